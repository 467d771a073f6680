// Package prettyjson indents JSON and colors it when writing to a terminal.
package prettyjson

import (
	"github.com/henvic/readmegen/color"
	"github.com/henvic/readmegen/isterm"
	"github.com/tidwall/pretty"
)

// Pretty prettifies JSON
func Pretty(b []byte) []byte {
	res := pretty.PrettyOptions(b, &pretty.Options{
		Width:  20,
		Indent: "    ",
	})

	if !color.NoColor && !color.NoColorFlag && isterm.Stdout() {
		res = pretty.Color(res, nil)
	}

	return res
}
