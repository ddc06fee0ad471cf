package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// Terminal asks each question with a promptui text prompt.
type Terminal struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func NewTerminal(in io.ReadCloser, out io.WriteCloser) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) Ask(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  promptLabel(label),
		Stdin:  t.in,
		Stdout: t.out,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", ErrClosed
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

// promptLabel drops the leading blank lines and trailing ": " of a line-mode
// label; promptui draws its own separator.
func promptLabel(label string) string {
	label = strings.TrimSuffix(strings.TrimSpace(label), ":")
	return strings.TrimSpace(label)
}
