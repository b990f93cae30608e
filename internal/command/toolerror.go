package command

import (
	"fmt"
	"strings"
)

// detailLimit caps how much captured tool output is carried in a ToolError.
const detailLimit = 2000

// ToolError reports an external tool failure: a non-zero exit status, a
// failure to start the process, or a declared output file that was missing
// or empty. Detail carries the tail of the tool's diagnostics and is safe to
// return to the client.
type ToolError struct {
	Tool     string
	ExitCode int
	Detail   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed (exit %d): %s", e.Tool, e.ExitCode, e.Detail)
}

// NewToolError builds a ToolError from a command's captured output,
// preferring stderr over stdout and truncating to the last detailLimit runes.
func NewToolError(tool string, out Output) *ToolError {
	detail := strings.TrimSpace(SafeString(out.Stderr))
	if detail == "" {
		detail = strings.TrimSpace(SafeString(out.Stdout))
	}
	if detail == "" {
		detail = "command failed"
	}
	return &ToolError{
		Tool:     tool,
		ExitCode: out.ExitCode,
		Detail:   Tail(detail, detailLimit),
	}
}
