// Package markdown has helpers for writing markdown documents.
package markdown

import (
	"fmt"
	"io"
	"strings"
)

// Heading of a given level (1 to 6)
func Heading(level int, text string) string {
	switch {
	case level < 1:
		level = 1
	case level > 6:
		level = 6
	}

	return strings.Repeat("#", level) + " " + text
}

// Comment is an HTML comment
func Comment(text string) string {
	return "<!-- " + text + " -->"
}

// Link to an URL
func Link(text, url string) string {
	return "[" + text + "](" + url + ")"
}

// Image link
func Image(alt, url string) string {
	return "!" + Link(alt, url)
}

// Writer writes markdown elements, one per line.
// After the first write error all operations are no-ops and Err returns it.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a markdown writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

// Line of text
func (mw *Writer) Line(text string) {
	if mw.err != nil {
		return
	}

	_, mw.err = fmt.Fprintln(mw.w, text)
}

// Heading line
func (mw *Writer) Heading(level int, text string) {
	mw.Line(Heading(level, text))
}

// Paragraph followed by a blank line
func (mw *Writer) Paragraph(text string) {
	mw.Line(text)
	mw.Line("")
}

// Comment followed by a blank line
func (mw *Writer) Comment(text string) {
	mw.Line(Comment(text))
	mw.Line("")
}

// Err returns the first error found while writing
func (mw *Writer) Err() error {
	return mw.err
}
