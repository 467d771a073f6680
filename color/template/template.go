// Package colortemplate exposes the color package to text/template.
package colortemplate

import (
	"text/template"

	"github.com/henvic/readmegen/color"
)

var attributes = map[string]color.Attribute{
	"Reset":       color.Reset,
	"Bold":        color.Bold,
	"Faint":       color.Faint,
	"Italic":      color.Italic,
	"Underline":   color.Underline,
	"FgBlack":     color.FgBlack,
	"FgRed":       color.FgRed,
	"FgGreen":     color.FgGreen,
	"FgYellow":    color.FgYellow,
	"FgBlue":      color.FgBlue,
	"FgMagenta":   color.FgMagenta,
	"FgCyan":      color.FgCyan,
	"FgWhite":     color.FgWhite,
	"FgHiBlack":   color.FgHiBlack,
	"FgHiRed":     color.FgHiRed,
	"FgHiGreen":   color.FgHiGreen,
	"FgHiYellow":  color.FgHiYellow,
	"FgHiBlue":    color.FgHiBlue,
	"FgHiMagenta": color.FgHiMagenta,
	"FgHiCyan":    color.FgHiCyan,
	"FgHiWhite":   color.FgHiWhite,
	"BgHiYellow":  color.BgHiYellow,
	"BgHiMagenta": color.BgHiMagenta,
}

// Functions lists the color functions.
// Besides the attributes, "color" formats its arguments and "hex" returns
// the attributes of a 24-bit foreground color (or none if the color is invalid).
func Functions() template.FuncMap {
	var fm = template.FuncMap{
		"color": func(i ...interface{}) string { return color.Format(i...) },
		"hex": func(s string) []color.Attribute {
			a, _ := color.RGB(s)
			return a
		},
	}

	for name, attr := range attributes {
		var a = attr
		fm[name] = func() color.Attribute { return a }
	}

	return fm
}

// AddToTemplate adds color functions to a template
func AddToTemplate(t *template.Template) {
	t.Funcs(Functions())
}
