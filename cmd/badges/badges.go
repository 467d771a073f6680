package cmdbadges

import (
	"fmt"

	"github.com/henvic/readmegen/cmd/internal/session"
	"github.com/henvic/readmegen/document"
	"github.com/henvic/readmegen/templates"
	"github.com/spf13/cobra"
)

// BadgesCmd lists the badges of the profile with their colors
var BadgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List the colored badges of the profile",
	Args:  cobra.NoArgs,
	RunE:  badgesRun,
	Example: `readmegen badges
readmegen badges --seed 42
readmegen badges --format "{{range .}}{{.Title}}: {{len .Badges}}\n{{end}}"`,
}

var format string

func init() {
	BadgesCmd.Flags().StringVarP(&format, "format", "f", "", "Format the output using the given go template")
}

func badgesRun(cmd *cobra.Command, args []string) error {
	var c = session.Config()
	p, err := session.RenderFlags.LoadProfile(c)

	if err != nil {
		return err
	}

	o, err := session.RenderFlags.Options(c)

	if err != nil {
		return err
	}

	rows, err := document.Colorize(cmd.Context(), p, o)

	if err != nil {
		return err
	}

	out, err := templates.ExecuteOrList(format, rows)

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
