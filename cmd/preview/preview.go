package cmdpreview

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/cmd/internal/session"
	"github.com/henvic/readmegen/document"
	"github.com/spf13/cobra"
)

// PreviewCmd renders the README on the terminal
var PreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the generated README on the terminal",
	Long: `Preview the generated README on the terminal.
Badges are images, so only their alternative text is shown.`,
	Args: cobra.NoArgs,
	RunE: previewRun,
}

var wordWrap int

func init() {
	PreviewCmd.Flags().IntVar(&wordWrap, "width", 80, "Word wrap width")
}

func previewRun(cmd *cobra.Command, args []string) error {
	var c = session.Config()
	p, err := session.RenderFlags.LoadProfile(c)

	if err != nil {
		return err
	}

	o, err := session.RenderFlags.Options(c)

	if err != nil {
		return err
	}

	var buf bytes.Buffer

	if err := document.Render(cmd.Context(), &buf, p, o); err != nil {
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)

	if err != nil {
		return errwrap.Wrapf("can't create markdown renderer: {{err}}", err)
	}

	out, err := r.Render(buf.String())

	if err != nil {
		return errwrap.Wrapf("can't render preview: {{err}}", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
