package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/defaults"
	"github.com/henvic/readmegen/envs"
	"github.com/henvic/readmegen/palette"
	"github.com/henvic/readmegen/verbose"
	"gopkg.in/ini.v1"
)

// PaletteSection of the configuration file replaces the flavor colors
const PaletteSection = "palette"

// Config of the application
type Config struct {
	Background string          `ini:"background"`
	Flavor     string          `ini:"flavor"`
	Endpoint   string          `ini:"endpoint"`
	Style      string          `ini:"style"`
	Profile    string          `ini:"profile"`
	NoColor    bool            `ini:"disable_colors"`
	Path       string          `ini:"-"`
	Colors     []palette.Color `ini:"-"`
	file       *ini.File       `ini:"-"`
}

// Path of the configuration file on the user home
func Path() string {
	return filepath.Join(homeDir(), defaults.ConfigFile)
}

// Load the configuration from path. A missing file means defaults.
func Load(path string) (*Config, error) {
	var c = &Config{
		Path: path,
	}

	exists, err := c.configExists()

	if err != nil {
		return nil, err
	}

	switch exists {
	case true:
		if err := c.read(); err != nil {
			return nil, err
		}
	default:
		verbose.Debug("Config file not found.")
		c.file = ini.Empty()
	}

	return c, c.load()
}

// Palette of icon colors: the [palette] section when present, otherwise the flavor
func (c *Config) Palette() (palette.Palette, error) {
	f, err := palette.Flavor(c.Flavor)

	if err != nil || len(c.Colors) == 0 {
		return f, err
	}

	p, err := palette.New(PaletteSection, f.Base(), c.Colors)

	if err != nil {
		return p, errwrap.Wrapf("can't use palette from "+c.Path+": {{err}}", err)
	}

	return p, nil
}

func (c *Config) setDefaults() {
	c.Background = ""
	c.Flavor = defaults.Flavor
	c.Endpoint = defaults.ShieldsEndpoint
}

func (c *Config) configExists() (bool, error) {
	var _, err = os.Stat(c.Path)

	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errwrap.Wrapf("can't check configuration file: {{err}}", err)
	}
}

func (c *Config) load() error {
	c.setDefaults()

	if err := c.file.MapTo(c); err != nil {
		return errwrap.Wrapf("can't map configuration "+c.Path+": {{err}}", err)
	}

	return nil
}

func (c *Config) read() error {
	var err error
	c.file, err = ini.Load(c.Path)

	if err != nil {
		return errwrap.Wrapf("error reading configuration file "+c.Path+
			" (fix it by hand or erase it): {{err}}", err)
	}

	c.readPalette()
	return nil
}

func (c *Config) readPalette() {
	if !c.file.HasSection(PaletteSection) {
		return
	}

	var section = c.file.Section(PaletteSection)

	for _, k := range section.KeyStrings() {
		c.Colors = append(c.Colors, palette.Color{
			Name: k,
			Hex:  strings.TrimSpace(section.Key(k).Value()),
		})
	}
}

func homeDir() string {
	if home := os.Getenv(envs.CustomHome); home != "" {
		return home
	}

	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE")
	}

	return os.Getenv("HOME")
}
