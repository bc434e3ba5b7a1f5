// Package termio provides single-keystroke input for the interactive
// prompt. The raw-mode wrapper lives here so the rest of the harness can
// run against any io.Reader.
package termio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Input yields one character per call, blocking until the operator acts.
type Input interface {
	ReadChar() (byte, error)
}

// ReaderInput adapts a plain io.Reader (scripted tests, pipes) to Input.
type ReaderInput struct {
	r *bufio.Reader
}

func NewReaderInput(r io.Reader) *ReaderInput {
	return &ReaderInput{r: bufio.NewReaderSize(r, 64)}
}

func (in *ReaderInput) ReadChar() (byte, error) {
	return in.r.ReadByte()
}

// TTY reads single keystrokes from a terminal, toggling raw mode around
// each read so the terminal is never left raw on a crash.
type TTY struct {
	in *os.File
}

func NewTTY(in *os.File) *TTY {
	return &TTY{in: in}
}

func (t *TTY) ReadChar() (byte, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		var buf [1]byte
		if _, err := t.in.Read(buf[:]); err != nil {
			return 0, err
		}
		return buf[0], nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	var buf [1]byte
	if _, err := t.in.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
