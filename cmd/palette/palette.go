package cmdpalette

import (
	"fmt"
	"strings"

	"github.com/henvic/readmegen/cmd/internal/session"
	"github.com/henvic/readmegen/color"
	"github.com/henvic/readmegen/figures"
	"github.com/henvic/readmegen/formatter"
	"github.com/henvic/readmegen/palette"
	"github.com/spf13/cobra"
)

// PaletteCmd lists the colors of a flavor
var PaletteCmd = &cobra.Command{
	Use:   "palette [flavor]",
	Short: "List the icon colors of a flavor",
	Long: `List the icon colors of a Catppuccin flavor.
Available flavors: ` + strings.Join(palette.FlavorNames(), ", ") + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: paletteRun,
	Example: `readmegen palette
readmegen palette latte`,
}

func paletteRun(cmd *cobra.Command, args []string) error {
	var p, err = getPalette(args)

	if err != nil {
		return err
	}

	var tw = formatter.NewTabWriter(cmd.OutOrStdout())

	fmt.Fprintln(tw, "Color\tHex\tSwatch")

	for _, c := range p.Colors() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Hex, swatch(c.Hex))
	}

	fmt.Fprintf(tw, "%s base\t%s\t%s\n", figures.Bullet, p.Base(), swatch(p.Base()))

	return tw.Flush()
}

func getPalette(args []string) (palette.Palette, error) {
	if len(args) == 1 {
		return palette.Flavor(args[0])
	}

	return session.RenderFlags.Palette(session.Config())
}

func swatch(hex string) string {
	var s = strings.Repeat(figures.Square, 3)
	attrs, err := color.RGB(hex)

	if err != nil {
		return s
	}

	return color.Format(attrs, s)
}
