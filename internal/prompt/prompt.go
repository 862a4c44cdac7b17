// Package prompt implements the one-line console exchange: writing a
// prompt and reading back a single line of input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream closes before any data arrives.
var ErrNoInput = errors.New("input stream closed before a line was read")

// Ask writes the prompt text without a trailing newline. The write goes
// straight to w, so the prompt is visible before a following read blocks.
func Ask(w io.Writer, text string) error {
	if _, err := fmt.Fprint(w, text); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// Reader reads single lines from an input stream.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps an input stream for line-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine blocks until one full line is available and returns it without
// its line terminator. A final line missing its terminator still counts as
// a line; a stream that closes before any byte arrives yields ErrNoInput.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	switch {
	case err == nil:
		// full line, terminator included
	case errors.Is(err, io.EOF) && line != "":
		// the stream ended mid-line; the partial data is still a line
	case errors.Is(err, io.EOF):
		return "", ErrNoInput
	default:
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
