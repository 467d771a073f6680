// Heavily modified version of
// https://github.com/fatih/color by Fatih Arslan (2013, MIT license)
// with minimal public interface:
// Format, Escape, and 24-bit color helpers

package color

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// NoColor defines if the output is colorized or not.
	NoColor = false

	// NoColorFlag is set by the global --no-color flag
	NoColorFlag = false
)

// Attribute defines a single SGR Code
type Attribute int

// Base attributes
const (
	Reset Attribute = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground text colors
const (
	FgBlack Attribute = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors
const (
	FgHiBlack Attribute = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors
const (
	BgBlack Attribute = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// Background Hi-Intensity text colors
const (
	BgHiBlack Attribute = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

const (
	escape   = "\x1b"
	unescape = "\\x1b"
)

// Extended color selectors
const (
	fgExtended Attribute = 38
	bgExtended Attribute = 48
	trueColor  Attribute = 2
)

// RGB returns the attributes for a 24-bit foreground color given as hex
func RGB(hex string) ([]Attribute, error) {
	return extended(fgExtended, hex)
}

// BgRGB returns the attributes for a 24-bit background color given as hex
func BgRGB(hex string) ([]Attribute, error) {
	return extended(bgExtended, hex)
}

func extended(selector Attribute, hex string) ([]Attribute, error) {
	c, err := colorful.Hex("#" + strings.TrimPrefix(hex, "#"))

	if err != nil {
		return nil, err
	}

	r, g, b := c.RGB255()
	return []Attribute{selector, trueColor, Attribute(r), Attribute(g), Attribute(b)}, nil
}

// Format text for terminal
func Format(s ...interface{}) string {
	var out = make([]interface{}, 0)
	var params = []Attribute{}
	var in = -1

	for i, v := range s {
		switch a := v.(type) {
		case []Attribute:
			params = append(params, a...)
		case Attribute:
			params = append(params, a)
		default:
			in = i
			goto over
		}
	}

over:
	if in != -1 {
		out = s[in:]
	}

	return wrap(params, sprintf(out...))
}

// Escape text for terminal
func Escape(s string) string {
	return strings.ReplaceAll(s, escape, unescape)
}

func sprintf(s ...interface{}) string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%v", s[0])
	}

	format := s[0]
	return fmt.Sprintf(fmt.Sprintf("%v", format), s[1:]...)
}

// sequence returns a formated SGR sequence to be plugged into a "\x1b[...m"
// an example output might be: "1;36" -> bold cyan.
func sequence(params []Attribute) string {
	format := make([]string, len(params))
	for i, v := range params {
		format[i] = strconv.Itoa(int(v))
	}

	return strings.Join(format, ";")
}

// wrap wraps the s string with the colors attributes.
func wrap(params []Attribute, s string) string {
	if NoColor || NoColorFlag {
		return s
	}

	return fmt.Sprintf("%s[%sm%s%s[%dm", escape, sequence(params), s, escape, Reset)
}
