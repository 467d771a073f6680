// Package formatter aligns columns for humans or tabs them for machines.
package formatter

import (
	"io"
	"strings"
	"text/tabwriter"
)

// Human tells if the default formatting strategy should be human or machine friendly
var Human = false

// TabWriter aligns columns when printing for humans
type TabWriter struct {
	w  io.Writer
	tw *tabwriter.Writer
}

// NewTabWriter creates a TabWriter. Columns are only aligned if Human is set.
func NewTabWriter(w io.Writer) *TabWriter {
	var t = &TabWriter{
		w: w,
	}

	if Human {
		t.tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	}

	return t
}

func (t *TabWriter) Write(p []byte) (n int, err error) {
	if t.tw == nil {
		return t.w.Write(p)
	}

	return t.tw.Write(p)
}

// Flush the aligned output
func (t *TabWriter) Flush() error {
	if t.tw == nil {
		return nil
	}

	return t.tw.Flush()
}

// CondPad is a conditional padding function
func CondPad(word string, threshold int) string {
	if !Human {
		return "\t"
	}

	var wl = len(word)
	var space = " "

	if threshold > wl {
		space = strings.Repeat(" ", threshold-wl)
	}

	return space
}
