package output

import (
	"fmt"
	"io"
	"os"

	"github.com/context7/upsert-action/internal/logger"
)

// Writer emits action outputs. Values are appended as name=value lines to
// the file named by GITHUB_OUTPUT; when that variable is unset or the file
// cannot be written, it falls back to the legacy ::set-output workflow
// command on stdout, which older runners still parse.
type Writer struct {
	path   string
	stdout io.Writer
}

// NewWriter creates a Writer targeting the file the runner provided.
func NewWriter() *Writer {
	return &Writer{
		path:   os.Getenv("GITHUB_OUTPUT"),
		stdout: os.Stdout,
	}
}

// NewWriterTo creates a Writer with an explicit target path and fallback
// stream. An empty path forces the stdout fallback.
func NewWriterTo(path string, stdout io.Writer) *Writer {
	return &Writer{path: path, stdout: stdout}
}

// Set emits one output pair. Values are assumed to be single-line.
func (w *Writer) Set(name, value string) {
	if w.path != "" {
		if err := w.appendLine(name, value); err == nil {
			return
		}
		logger.Warnf("Failed to write output '%s' to %s, falling back to set-output", name, w.path)
	}
	fmt.Fprintf(w.stdout, "::set-output name=%s::%s\n", name, value)
}

func (w *Writer) appendLine(name, value string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("failed to append output: %w", err)
	}
	return nil
}
