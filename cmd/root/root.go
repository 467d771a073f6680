package root

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/henvic/readmegen/cmd/internal/session"
	"github.com/henvic/readmegen/cmd/internal/template"
	cmdversion "github.com/henvic/readmegen/cmd/version"
	"github.com/henvic/readmegen/color"
	"github.com/henvic/readmegen/document"
	"github.com/henvic/readmegen/envs"
	"github.com/henvic/readmegen/exiterror"
	"github.com/henvic/readmegen/verbose"
	"github.com/spf13/cobra"
)

// Cmd is the main command for the CLI
var Cmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate a GitHub profile README with Catppuccin colored badges",
	Example: `readmegen > README.md
readmegen --flavor mocha --style for-the-badge
readmegen --profile profile.yaml --seed 42 --no-timestamp`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: persistentPreRun,
	RunE:              runE,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

var (
	deferred bool
	version  bool
)

// READMEGEN_VERBOSE=true enables verbose mode before flags are parsed
func maybeEnableVerboseByEnv() {
	if v, _ := os.LookupEnv(envs.Verbose); v == "true" {
		verbose.Enabled = true
	}
}

func init() {
	template.Configure(Cmd)
	cobra.EnableCommandSorting = false

	Cmd.PersistentFlags().BoolVarP(
		&verbose.Enabled,
		"verbose",
		"v",
		false,
		"Show more information about an operation")

	// this has to run after defining the --verbose flag above
	maybeEnableVerboseByEnv()

	Cmd.PersistentFlags().BoolVarP(
		&deferred,
		"defer-verbose",
		"V",
		false,
		"Defer verbose output")

	Cmd.PersistentFlags().BoolVar(
		&color.NoColorFlag,
		"no-color",
		false,
		"Disable color output")

	session.RenderFlags.Register(Cmd.PersistentFlags())

	Cmd.Flags().BoolVar(
		&version,
		"version", false, "Print version information and quit")

	hideFlags()

	Cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return exiterror.Wrap(err, exiterror.Usage)
	})

	for _, c := range commands {
		Cmd.AddCommand(c)
	}
}

func hideFlags() {
	if err := Cmd.Flags().MarkHidden("version"); err != nil {
		panic(err)
	}

	for _, name := range []string{"defer-verbose", "no-color"} {
		if err := Cmd.PersistentFlags().MarkHidden(name); err != nil {
			panic(err)
		}
	}
}

func persistentPreRun(cmd *cobra.Command, args []string) error {
	if deferred {
		verbose.Enabled = true
		verbose.Deferred = true
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n uint64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += uint64(n)
	return n, err
}

func runE(cmd *cobra.Command, args []string) error {
	if version {
		cmdversion.Print(cmd.OutOrStdout())
		return nil
	}

	var c = session.Config()
	p, err := session.RenderFlags.LoadProfile(c)

	if err != nil {
		return err
	}

	o, err := session.RenderFlags.Options(c)

	if err != nil {
		return err
	}

	var start = time.Now()
	var cw = &countingWriter{w: cmd.OutOrStdout()}

	if err := document.Render(cmd.Context(), cw, p, o); err != nil {
		return err
	}

	verbose.Debug("Wrote", humanize.Bytes(cw.n), "in", time.Since(start).Round(time.Microsecond))
	return nil
}
