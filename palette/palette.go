// Package palette provides the Catppuccin color flavors used for badge icons.
// Colors from https://github.com/catppuccin/catppuccin#-palettes
// (accent colors only: the text, overlay, surface and base tones are left out).
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/hashicorp/errwrap"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidHex is used when a color is not a #rgb or #rrggbb value
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrUnknownFlavor is used when a flavor is not found
	ErrUnknownFlavor = errors.New("unknown flavor")

	// ErrEmptyName is used when a color has no name
	ErrEmptyName = errors.New("color name is empty")

	// ErrDuplicatedName is used when two colors of a palette share a name
	ErrDuplicatedName = errors.New("color name is duplicated")
)

const hexDigits = "0123456789abcdefABCDEF"

// Color of a palette
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette is an ordered, immutable list of named colors
type Palette struct {
	name   string
	base   string
	colors []Color
	index  map[string]int
}

// New creates a palette. Hex values are normalized to six lowercase digits
// without the leading #.
func New(name, base string, colors []Color) (Palette, error) {
	var p = Palette{
		name:   name,
		colors: make([]Color, 0, len(colors)),
		index:  map[string]int{},
	}

	var err error

	if p.base, err = NormalizeHex(base); err != nil {
		return Palette{}, errwrap.Wrapf("bad base color for palette "+name+": {{err}}", err)
	}

	for _, c := range colors {
		var key = strings.ToLower(strings.TrimSpace(c.Name))

		if key == "" {
			return Palette{}, ErrEmptyName
		}

		if _, ok := p.index[key]; ok {
			return Palette{}, errwrap.Wrapf(`{{err}}: "`+c.Name+`"`, ErrDuplicatedName)
		}

		hex, err := NormalizeHex(c.Hex)

		if err != nil {
			return Palette{}, errwrap.Wrapf("bad color "+c.Name+": {{err}}", err)
		}

		p.index[key] = len(p.colors)
		p.colors = append(p.colors, Color{
			Name: strings.TrimSpace(c.Name),
			Hex:  hex,
		})
	}

	return p, nil
}

// Name of the palette
func (p Palette) Name() string {
	return p.name
}

// Base is the background tone of the palette
func (p Palette) Base() string {
	return p.base
}

// Len is the number of colors
func (p Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the colors in order
func (p Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// Hexes returns the hex values in order
func (p Palette) Hexes() []string {
	return pie.Map(p.colors, func(c Color) string { return c.Hex })
}

// Names returns the color names in order
func (p Palette) Names() []string {
	return pie.Map(p.colors, func(c Color) string { return c.Name })
}

// Hex gets the value of a color by its name (case-insensitive)
func (p Palette) Hex(name string) (string, bool) {
	i, ok := p.index[strings.ToLower(strings.TrimSpace(name))]

	if !ok {
		return "", false
	}

	return p.colors[i].Hex, true
}

// Resolve a color reference: a color name from the palette, a hex value, or
// anything else (a named color of the badge service) which is kept as is.
func (p Palette) Resolve(ref string) string {
	if hex, ok := p.Hex(ref); ok {
		return hex
	}

	if hex, err := NormalizeHex(ref); err == nil {
		return hex
	}

	return strings.TrimSpace(ref)
}

// NormalizeHex validates a hex color and returns it as six lowercase digits
func NormalizeHex(s string) (string, error) {
	var h = strings.TrimPrefix(strings.TrimSpace(s), "#")

	// colorful.Hex ignores trailing garbage, so check the digits first
	if l := len(h); (l != 3 && l != 6) || strings.Trim(h, hexDigits) != "" {
		return "", errwrap.Wrapf(fmt.Sprintf(`{{err}} "%s"`, s), ErrInvalidHex)
	}

	c, err := colorful.Hex("#" + h)

	if err != nil {
		return "", errwrap.Wrapf(fmt.Sprintf(`{{err}} "%s"`, s), ErrInvalidHex)
	}

	return strings.TrimPrefix(c.Hex(), "#"), nil
}

// RGB255 returns the red, green, and blue components of a hex color
func RGB255(hex string) (r, g, b uint8, err error) {
	n, err := NormalizeHex(hex)

	if err != nil {
		return 0, 0, 0, err
	}

	c, err := colorful.Hex("#" + n)

	if err != nil {
		return 0, 0, 0, err
	}

	r, g, b = c.RGB255()
	return r, g, b, nil
}
