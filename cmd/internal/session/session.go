// Package session holds the configuration loaded for the running command
// and the flags shared by the commands that render a profile.
package session

import (
	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/config"
	"github.com/henvic/readmegen/defaults"
	"github.com/henvic/readmegen/document"
	"github.com/henvic/readmegen/palette"
	"github.com/henvic/readmegen/profile"
	"github.com/henvic/readmegen/verbose"
	"github.com/spf13/pflag"
)

var cfg *config.Config

// RenderFlags are registered on the root command and shared by its subcommands
var RenderFlags = &Flags{}

// WithConfig sets the configuration of the session
func WithConfig(c *config.Config) {
	cfg = c
}

// Config of the session. Defaults are used if none was set.
func Config() *config.Config {
	if cfg == nil {
		return &config.Config{
			Flavor:   defaults.Flavor,
			Endpoint: defaults.ShieldsEndpoint,
		}
	}

	return cfg
}

// Flags overriding the configuration
type Flags struct {
	Background  string
	Flavor      string
	Profile     string
	Style       string
	Seed        uint64
	NoTimestamp bool

	fs *pflag.FlagSet
}

// Register the flags on a flag set
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.fs = fs

	fs.StringVar(&f.Background, "background", "", "Background color of the badges (defaults to the flavor base)")
	fs.StringVar(&f.Flavor, "flavor", "", "Catppuccin flavor for the icon colors (latte, frappe, macchiato, mocha)")
	fs.StringVar(&f.Profile, "profile", "", "Read the profile from a YAML file")
	fs.StringVar(&f.Style, "style", "", "Style of the badges (flat, flat-square, plastic, for-the-badge, social)")
	fs.Uint64Var(&f.Seed, "seed", 0, "Seed for drawing icon colors")
	fs.BoolVar(&f.NoTimestamp, "no-timestamp", false, "Omit the generation comment")
}

// Seeded tells if the --seed flag was used
func (f *Flags) Seeded() bool {
	return f.fs != nil && f.fs.Changed("seed")
}

// Palette from the --flavor flag or the configuration
func (f *Flags) Palette(c *config.Config) (palette.Palette, error) {
	if f.Flavor != "" {
		return palette.Flavor(f.Flavor)
	}

	return c.Palette()
}

// LoadProfile from the --profile flag, the configuration, or the default one
func (f *Flags) LoadProfile(c *config.Config) (profile.Profile, error) {
	var path = f.Profile

	if path == "" {
		path = c.Profile
	}

	if path == "" {
		return profile.Default(), nil
	}

	verbose.Debug("Reading profile", path)
	return profile.Load(path)
}

// Options for rendering, with flags taking precedence over the configuration
func (f *Flags) Options(c *config.Config) (document.Options, error) {
	p, err := f.Palette(c)

	if err != nil {
		return document.Options{}, err
	}

	var o = document.Options{
		Palette:       p,
		Background:    first(f.Background, c.Background),
		Endpoint:      first(c.Endpoint, defaults.ShieldsEndpoint),
		Style:         first(f.Style, c.Style),
		OmitTimestamp: f.NoTimestamp,
	}

	if o.Background != "" {
		if o.Background, err = background(p, o.Background); err != nil {
			return o, err
		}
	}

	if f.Seeded() {
		wheel, err := colorwheel.NewShuffle(p.Hexes(), colorwheel.Seeded(f.Seed))

		if err != nil {
			return o, errwrap.Wrapf("palette "+p.Name()+": {{err}}", err)
		}

		o.Colors = wheel
	}

	verbose.Debug("Using palette", p.Name(), "with", p.Len(), "colors")
	return o, nil
}

// background is either a color of the palette or a hex value
func background(p palette.Palette, ref string) (string, error) {
	if hex, ok := p.Hex(ref); ok {
		return hex, nil
	}

	hex, err := palette.NormalizeHex(ref)

	if err != nil {
		return "", errwrap.Wrapf("bad background: {{err}}", err)
	}

	return hex, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
