// Package pdfimport extracts chart text from PDF files by shelling out
// to pdftotext. Layout mode keeps the column alignment that the
// chords-above-lyrics parser depends on.
package pdfimport

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrFileNotFound  = fmt.Errorf("file not found")
	ErrToolMissing   = fmt.Errorf("pdftotext not installed")
	ErrEmptyDocument = fmt.Errorf("no text extracted")
)

// converterError wraps pdftotext command failures with enough context
// to debug them.
type converterError struct {
	cmd     string
	output  string
	wrapped error
}

func (e *converterError) Error() string {
	return fmt.Sprintf("pdftotext error: %s\nCommand: %s\nOutput: %s", e.wrapped, e.cmd, e.output)
}

func (e *converterError) Unwrap() error {
	return e.wrapped
}

// Convert runs pdftotext over the file and returns the extracted text,
// trimmed of the form feeds pdftotext inserts between pages.
func Convert(ctx context.Context, path string, log *logrus.Logger) (string, error) {
	if log == nil {
		log = logrus.New()
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", err
	}
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", ErrToolMissing
	}

	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", path, "-")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &converterError{cmd: cmd.String(), output: string(out), wrapped: err}
	}

	text := strings.ReplaceAll(string(out), "\f", "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}

	log.WithFields(logrus.Fields{"path": path, "chars": len(text)}).Info("PDF converted")
	return text, nil
}
