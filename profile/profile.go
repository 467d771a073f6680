// Package profile describes the content of a profile README.
package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/badge"
	"github.com/henvic/readmegen/markdown"
	"github.com/henvic/readmegen/palette"
	"gopkg.in/yaml.v3"
)

// DefaultSectionLevel is the heading level used when a section doesn't set one
const DefaultSectionLevel = 3

var (
	// ErrMissingTitle is used when a profile or section has no title
	ErrMissingTitle = errors.New("missing required field: title")

	// ErrBadLink is used when a contact link has no text or URL
	ErrBadLink = errors.New("contact link needs text and url")
)

// Badge of a section. IconColor is either a palette color name, a hex value,
// or empty to draw a color from the color wheel.
type Badge struct {
	Label     string `yaml:"label" json:"label"`
	Icon      string `yaml:"icon,omitempty" json:"icon,omitempty"`
	IconColor string `yaml:"iconColor,omitempty" json:"iconColor,omitempty"`
}

// Link to an external page
type Link struct {
	Text string `yaml:"text" json:"text"`
	URL  string `yaml:"url" json:"url"`
}

// Section of the profile
type Section struct {
	Title      string   `yaml:"title" json:"title"`
	Level      int      `yaml:"level,omitempty" json:"level,omitempty"`
	Badges     []Badge  `yaml:"badges,omitempty" json:"badges,omitempty"`
	Paragraphs []string `yaml:"paragraphs,omitempty" json:"paragraphs,omitempty"`
	Contacts   []Link   `yaml:"contacts,omitempty" json:"contacts,omitempty"`
}

// Profile README content
type Profile struct {
	Title    string    `yaml:"title" json:"title"`
	Intro    string    `yaml:"intro,omitempty" json:"intro,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Load a profile from a YAML file
func Load(path string) (Profile, error) {
	b, err := os.ReadFile(path)

	if err != nil {
		return Profile{}, errwrap.Wrapf("can't read profile: {{err}}", err)
	}

	p, err := Parse(b)

	if err != nil {
		return Profile{}, errwrap.Wrapf("can't load profile "+path+": {{err}}", err)
	}

	return p, nil
}

// Parse a YAML profile
func Parse(b []byte) (Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, err
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Validate the profile
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}

	for i, s := range p.Sections {
		if err := s.validate(); err != nil {
			return errwrap.Wrapf(fmt.Sprintf("section #%d: {{err}}", i+1), err)
		}
	}

	return nil
}

func (s Section) validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrMissingTitle
	}

	for i, b := range s.Badges {
		if strings.TrimSpace(b.Label) == "" {
			return errwrap.Wrapf(fmt.Sprintf("badge #%d: {{err}}", i+1), badge.ErrMissingLabel)
		}
	}

	for _, l := range s.Contacts {
		if l.Text == "" || l.URL == "" {
			return ErrBadLink
		}
	}

	return nil
}

// HeadingLevel of the section
func (s Section) HeadingLevel() int {
	if s.Level == 0 {
		return DefaultSectionLevel
	}

	return s.Level
}

// BadgeList creates the badges of the section, resolving color names
// against the palette
func (s Section) BadgeList(p palette.Palette, style string) ([]badge.Badge, error) {
	var badges = make([]badge.Badge, 0, len(s.Badges))

	for _, sb := range s.Badges {
		var o = badge.Options{
			Icon:  sb.Icon,
			Style: style,
		}

		if sb.IconColor != "" {
			o.IconColor = p.Resolve(sb.IconColor)
		}

		b, err := badge.New(sb.Label, o)

		if err != nil {
			return nil, errwrap.Wrapf("section "+s.Title+": {{err}}", err)
		}

		badges = append(badges, b)
	}

	return badges, nil
}

// ContactLine joins the contact links as a sentence, or returns an empty
// string if there are none
func (s Section) ContactLine() string {
	var links = pie.Map(s.Contacts, func(l Link) string {
		return markdown.Link(l.Text, l.URL)
	})

	switch len(links) {
	case 0:
		return ""
	case 1:
		return "Contact via " + links[0]
	case 2:
		return "Contact via " + links[0] + " or " + links[1]
	}

	var last = len(links) - 1
	return "Contact via " + strings.Join(links[:last], ", ") + ", or " + links[last]
}
