// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/sealfield/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// WriteMetrics writes the container metrics to w and logs any errors.
func WriteMetrics(container *app.Container, w io.Writer, logger *slog.Logger) {
	if err := container.WriteMetrics(w); err != nil {
		logger.Error("failed to write metrics", slog.Any("error", err))
	}
}

// readValue returns value, or the whole of r with a single trailing newline
// removed when value is "-".
func readValue(r io.Reader, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s := string(data)
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	return s, nil
}
