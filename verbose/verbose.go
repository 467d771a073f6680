// Package verbose prints debugging messages when running with --verbose.
package verbose

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/henvic/readmegen/color"
)

var (
	// Enabled flag
	Enabled = false

	// Deferred flag to only print debug messages at the end of the program
	Deferred = false

	// ErrStream is the stream debug messages are written to
	ErrStream io.Writer = os.Stderr

	bufDeferredVerbose bytes.Buffer
)

// Debug prints verbose messages to stderr on verbose mode
func Debug(a ...interface{}) {
	if !Enabled {
		return
	}

	if Deferred {
		_, _ = fmt.Fprintln(&bufDeferredVerbose, a...)
		return
	}

	_, _ = fmt.Fprintln(ErrStream, a...)
}

// PrintDeferred debug messages
func PrintDeferred() {
	if !Deferred || bufDeferredVerbose.Len() == 0 {
		return
	}

	_, _ = fmt.Fprintln(ErrStream, color.Format(color.FgHiBlue, "Deferred verbose output:"))
	_, _ = bufDeferredVerbose.WriteTo(ErrStream)
}
