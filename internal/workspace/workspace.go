package workspace

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a per-request temporary directory holding the pipeline's
// input, intermediate, and output files. Each request owns exactly one
// workspace; nothing in it outlives the request.
type Workspace struct {
	dir string
}

// New creates a uniquely-named workspace under root (os.TempDir when empty).
// Callers must arrange Cleanup on every exit path, typically with defer
// right after a successful New.
func New(root string) (*Workspace, error) {
	if root == "" {
		root = os.TempDir()
	}
	dir := filepath.Join(root, "pdflight_"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, err
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// Input is the path of the uploaded PDF as written to disk.
func (w *Workspace) Input() string {
	return filepath.Join(w.dir, "input.pdf")
}

// Light is the path of the compressed intermediate PDF.
func (w *Workspace) Light() string {
	return filepath.Join(w.dir, "light.pdf")
}

// Output is the path of the final PDF produced by the OCR or optimize stage.
func (w *Workspace) Output() string {
	return filepath.Join(w.dir, "output.pdf")
}

// WriteInput materializes the uploaded bytes as the pipeline input file.
func (w *Workspace) WriteInput(data []byte) error {
	return os.WriteFile(w.Input(), data, 0o600)
}

// Cleanup removes the workspace and everything in it.
func (w *Workspace) Cleanup() error {
	return os.RemoveAll(w.dir)
}
