package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Output is the captured result of a finished external command.
// Stdout and Stderr hold the raw bytes; tools occasionally emit output that
// is not valid UTF-8, so decoding is deferred to SafeString.
type Output struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner executes external commands. It exists as an interface so the
// pipeline can be tested without the real tool binaries installed.
type Runner interface {
	// Run executes name with args, blocking until the process exits or ctx
	// is done. A non-zero exit status is reported via Output.ExitCode, not
	// as an error; the returned error is reserved for failures to run the
	// command at all (missing binary, ctx cancellation before start).
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Includes processes killed by ctx timeout (exit code -1).
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	return out, err
}

// SafeString decodes captured output permissively: invalid byte sequences
// are replaced with U+FFFD rather than failing.
func SafeString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// Tail returns at most n trailing runes of s.
func Tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
