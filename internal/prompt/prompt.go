// Package prompt provides the ways a session can ask the operator for input:
// promptui when attached to a terminal, a plain line reader otherwise.
package prompt

import (
	"errors"
	"os"

	"github.com/Utility-Gods/bmichart/pkg/types"
	"github.com/mattn/go-isatty"
)

// ErrClosed is returned once the operator closes input (EOF, Ctrl-C, Ctrl-D).
var ErrClosed = errors.New("input closed")

// ForTerminal picks a promptui prompter when in is an interactive terminal
// and a line prompter for pipes and redirected files.
func ForTerminal(in, out *os.File) types.Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTerminal(in, out)
	}
	return NewLine(in, out)
}
