package errorhandler

import (
	"github.com/henvic/readmegen/badge"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/palette"
	"github.com/henvic/readmegen/profile"
)

type messages map[string]string

type reason struct {
	name string
	err  error
}

// reasons are checked in order
var reasons = []reason{
	{"emptyPalette", colorwheel.ErrEmpty},
	{"missingLabel", badge.ErrMissingLabel},
	{"unknownFlavor", palette.ErrUnknownFlavor},
	{"invalidHex", palette.ErrInvalidHex},
	{"duplicatedColor", palette.ErrDuplicatedName},
	{"missingTitle", profile.ErrMissingTitle},
	{"badLink", profile.ErrBadLink},
}

var reasonMessage = messages{
	"emptyPalette":    "The color palette has no colors to draw badge icon colors from",
	"missingLabel":    "Every badge needs a label",
	"unknownFlavor":   `Use one of the available flavors: {{join .Flavors ", "}}`,
	"invalidHex":      "Colors must be hex values such as 24273a or #fff",
	"duplicatedColor": "Color names must be unique within a palette",
	"missingTitle":    "The profile and each of its sections need a title",
	"badLink":         "Contact links need both text and url",
}

var reasonCommandMessageOverrides = map[string]messages{
	"badge": messages{
		"missingLabel": "Pass the badge label as the first argument",
	},
}
