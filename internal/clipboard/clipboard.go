// Package clipboard copies glyphs and code point notations to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when neither a clipboard tool nor a terminal
// is available.
var ErrUnavailable = errors.New("no clipboard available")

// terminal receives the OSC 52 sequence when no clipboard tool works,
// e.g. over SSH.
var terminal io.Writer = os.Stderr

// Write copies text to the system clipboard. It falls back to asking the
// terminal to set its clipboard.
func Write(text string) error {
	if !sysclip.Unsupported {
		if err := sysclip.WriteAll(text); err == nil {
			return nil
		}
	}
	return writeOSC52(terminal, text)
}

func writeOSC52(w io.Writer, text string) error {
	if w == nil {
		return ErrUnavailable
	}
	if _, err := osc52.New(text).WriteTo(w); err != nil {
		return fmt.Errorf("writing OSC 52 sequence: %w", err)
	}
	return nil
}

// Available reports whether a native clipboard tool was found.
func Available() bool {
	return !sysclip.Unsupported
}
