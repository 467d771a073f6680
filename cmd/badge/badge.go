package cmdbadge

import (
	"fmt"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/browser"
	"github.com/henvic/readmegen/badge"
	"github.com/henvic/readmegen/cmd/internal/session"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/fancy"
	"github.com/henvic/readmegen/figures"
	"github.com/spf13/cobra"
)

// BadgeCmd prints a single badge
var BadgeCmd = &cobra.Command{
	Use:   "badge <label>",
	Short: "Print the markdown of a single badge",
	Args:  cobra.ExactArgs(1),
	RunE:  badgeRun,
	Example: `readmegen badge Go --icon-color Sky
readmegen badge "Python (Fanatic)" --icon Python --icon-color eed49f
readmegen badge Neovim --style for-the-badge --open`,
}

var (
	icon      string
	iconColor string
	open      bool
)

// openURL is replaced on tests
var openURL = browser.OpenURL

func init() {
	BadgeCmd.Flags().StringVar(&icon, "icon", "", "Icon of the badge (defaults to the label)")
	BadgeCmd.Flags().StringVar(&iconColor, "icon-color", "",
		"Color of the icon: a palette color name or hex value (drawn from the palette if empty)")
	BadgeCmd.Flags().BoolVar(&open, "open", false, "Open the badge image in the browser")
}

func badgeRun(cmd *cobra.Command, args []string) error {
	var c = session.Config()
	o, err := session.RenderFlags.Options(c)

	if err != nil {
		return err
	}

	var colors = o.Colors

	if colors == nil {
		wheel, err := colorwheel.NewShuffle(o.Palette.Hexes())

		if err != nil {
			return errwrap.Wrapf("palette "+o.Palette.Name()+": {{err}}", err)
		}

		colors = wheel
	}

	var background = o.Background

	if background == "" {
		background = o.Palette.Base()
	}

	b, err := badge.New(args[0], badge.Options{
		Icon:      icon,
		IconColor: o.Palette.Resolve(iconColor),
		Style:     o.Style,
	})

	if err != nil {
		return err
	}

	b = badge.Batch([]badge.Badge{b}, background, colors)[0]

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), b.Markdown(o.Endpoint)); err != nil {
		return err
	}

	if !open {
		return nil
	}

	var u = b.URL(o.Endpoint)

	if err := openURL(u); err != nil {
		return errwrap.Wrapf("can't open badge on browser: {{err}}", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), fancy.Success(figures.Tick+" Opened "+u))
	return nil
}
