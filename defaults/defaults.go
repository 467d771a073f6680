package defaults

var (
	// Version of the readmegen tool
	Version = "master"

	// Build commit
	Build = ""

	// BuildTime is the time when the build was generated
	BuildTime = ""

	// ShieldsEndpoint is the badge service the generated images point to
	ShieldsEndpoint = "https://img.shields.io/badge/"

	// Flavor of the Catppuccin palette used for icon colors
	Flavor = "macchiato"

	// Background used for all badges when none is configured.
	// It matches the base tone of the default flavor.
	Background = "24273a"

	// ConfigFile name, relative to the user home
	ConfigFile = ".readmegen"

	// IssuesURL for reporting bugs
	IssuesURL = "https://github.com/henvic/readmegen/issues/"
)
