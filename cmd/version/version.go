package cmdversion

import (
	"fmt"
	"io"
	"runtime"

	"github.com/henvic/readmegen/defaults"
	"github.com/spf13/cobra"
)

// VersionCmd is used for reading the version of this tool
var VersionCmd = &cobra.Command{
	Use:   "version",
	Args:  cobra.NoArgs,
	Run:   versionRun,
	Short: "Print version information and quit",
}

func versionRun(cmd *cobra.Command, args []string) {
	Print(cmd.OutOrStdout())
}

// Print the version information
func Print(w io.Writer) {
	fmt.Fprintf(w,
		"readmegen version %s %s/%s\n",
		defaults.Version,
		runtime.GOOS,
		runtime.GOARCH)

	if defaults.Build != "" {
		fmt.Fprintf(w, "Build commit: %v\n", defaults.Build)
	}

	if defaults.BuildTime != "" {
		fmt.Fprintf(w, "Build time: %v\n", defaults.BuildTime)
	}

	fmt.Fprintf(w, "Go version: %v\n", runtime.Version())
}
