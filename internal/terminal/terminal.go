// Package terminal is the thin layer between a rendered frame and the
// user's terminal window.
package terminal

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	cursorHome = "\033[H"

	// FallbackWidth and FallbackHeight are used when the window size cannot
	// be read from the terminal or the environment.
	FallbackWidth  = 80
	FallbackHeight = 24
)

// SizeFunc reports the current window size.
type SizeFunc func() (width, height int, err error)

type Terminal struct {
	out  io.Writer
	size SizeFunc
}

// New binds a Terminal to f, usually os.Stdout.
func New(f *os.File) *Terminal {
	fd := int(f.Fd())
	return NewWithSize(f, func() (int, int, error) { return term.GetSize(fd) })
}

// NewWithSize builds a Terminal around any writer and size source.
func NewWithSize(out io.Writer, size SizeFunc) *Terminal {
	return &Terminal{out: out, size: size}
}

// Size returns the window size. When the terminal cannot be queried it
// falls back to $COLUMNS and $LINES, then to 80×24.
func (t *Terminal) Size() (width, height int) {
	if w, h, err := t.size(); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return envInt("COLUMNS", FallbackWidth), envInt("LINES", FallbackHeight)
}

func (t *Terminal) HideCursor() error {
	_, err := io.WriteString(t.out, hideCursor)
	return err
}

func (t *Terminal) ShowCursor() error {
	_, err := io.WriteString(t.out, showCursor)
	return err
}

// Present moves the cursor to the top-left corner and writes frame in a
// single call.
func (t *Terminal) Present(frame string) error {
	_, err := io.WriteString(t.out, cursorHome+frame)
	return err
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
