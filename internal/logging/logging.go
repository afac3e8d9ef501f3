// Package logging holds the program-wide loggers.
package logging

import (
	"io"
	"log"
	"os"
)

// Info reports the main steps of the program, like the server address.
var Info = log.New(os.Stderr, "unilookup: ", log.LstdFlags)

// Debug traces query classification and result counts. It is silent
// unless verbose output is enabled.
var Debug = log.New(io.Discard, "unilookup.debug: ", log.LstdFlags|log.Lmsgprefix)

// SetVerbose turns debug output on or off.
func SetVerbose(verbose bool) {
	if verbose {
		Debug.SetOutput(os.Stderr)
		return
	}
	Debug.SetOutput(io.Discard)
}

// SetOutput redirects both loggers, mostly for tests.
func SetOutput(w io.Writer) {
	Info.SetOutput(w)
	Debug.SetOutput(w)
}
