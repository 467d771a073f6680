/*
Package badge renders shields.io badges as markdown image links.

A badge URL has the form

	https://img.shields.io/badge/<label>-<background>?logo=<icon>&logoColor=<color>

with every part percent-encoded, including reserved characters such as / and +.
*/
package badge

import (
	"errors"
	"net/url"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/defaults"
)

// ErrMissingLabel is used when a badge is created without a label
var ErrMissingLabel = errors.New("missing required field: badge label")

// Options for a badge
type Options struct {
	// Icon (shields.io logo) name. Defaults to the label.
	Icon string

	// IconColor is drawn from a color wheel when empty.
	IconColor string

	// Style of the badge (flat, flat-square, plastic, for-the-badge, social).
	Style string
}

// Badge is a label with an icon and colors
type Badge struct {
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	Background string `json:"background,omitempty"`
	IconColor  string `json:"iconColor,omitempty"`
	Style      string `json:"style,omitempty"`
}

// New badge
func New(label string, o Options) (Badge, error) {
	if strings.TrimSpace(label) == "" {
		return Badge{}, ErrMissingLabel
	}

	var b = Badge{
		Label:     label,
		Icon:      o.Icon,
		IconColor: o.IconColor,
		Style:     o.Style,
	}

	if b.Icon == "" {
		b.Icon = label
	}

	return b, nil
}

// URL of the badge image for a given badge service endpoint
func (b Badge) URL(endpoint string) string {
	var sb strings.Builder
	sb.WriteString(endpoint)
	sb.WriteString(escape(b.Label))
	sb.WriteString("-")
	sb.WriteString(escape(b.Background))
	sb.WriteString("?")

	var params []string

	if b.Icon != "" {
		params = append(params, "logo="+escape(b.Icon))
	}

	if b.IconColor != "" {
		params = append(params, "logoColor="+escape(b.IconColor))
	}

	if b.Style != "" {
		params = append(params, "style="+escape(b.Style))
	}

	sb.WriteString(strings.Join(params, "&"))
	return sb.String()
}

// escape all but unreserved characters, using %20 for spaces
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Markdown image link of the badge for a given badge service endpoint
func (b Badge) Markdown(endpoint string) string {
	return "![" + b.Label + "](" + b.URL(endpoint) + ")"
}

func (b Badge) String() string {
	return b.Markdown(defaults.ShieldsEndpoint)
}

// Batch applies a uniform background to the badges and draws an icon color
// from the wheel for each badge missing one, in order.
// The given slice is left untouched.
func Batch(badges []Badge, background string, colors colorwheel.Source) []Badge {
	return pie.Map(badges, func(b Badge) Badge {
		b.Background = background

		if b.IconColor == "" {
			b.IconColor = colors.Next()
		}

		return b
	})
}

// Render badges as markdown image links
func Render(badges []Badge, endpoint string) []string {
	return pie.Map(badges, func(b Badge) string { return b.Markdown(endpoint) })
}

// Row renders badges as a single space-separated line
func Row(badges []Badge, endpoint string) string {
	return strings.Join(Render(badges, endpoint), " ")
}
