package prompt

import (
	"bufio"
	"fmt"
	"io"
)

// Line reads one answer per line. It echoes the label verbatim, so the output
// reads the same as the terminal transcript.
type Line struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (l *Line) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(l.out, label); err != nil {
		return "", fmt.Errorf("error writing prompt: %w", err)
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", ErrClosed
	}
	return l.scanner.Text(), nil
}
