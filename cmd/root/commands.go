package root

import (
	cmdbadge "github.com/henvic/readmegen/cmd/badge"
	cmdbadges "github.com/henvic/readmegen/cmd/badges"
	cmdpalette "github.com/henvic/readmegen/cmd/palette"
	cmdpreview "github.com/henvic/readmegen/cmd/preview"
	versioncmd "github.com/henvic/readmegen/cmd/version"
	"github.com/spf13/cobra"
)

var commands = []*cobra.Command{
	cmdbadges.BadgesCmd,
	cmdbadge.BadgeCmd,
	cmdpalette.PaletteCmd,
	cmdpreview.PreviewCmd,
	versioncmd.VersionCmd,
}
