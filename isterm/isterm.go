// Package isterm tells if the standard streams are connected to a terminal.
package isterm

import (
	"os"

	"github.com/henvic/readmegen/envs"
	"github.com/henvic/readmegen/verbose"
	"golang.org/x/term"
)

// NoTTY helps to simulate a non-terminal process
var NoTTY = false

// Stderr returns if stderr is connected to a terminal
func Stderr() bool {
	return check(os.Stderr)
}

// Stdout returns if stdout is connected to a terminal
func Stdout() bool {
	return check(os.Stdout)
}

// Check if stdin, stderr, and stdout are connected to a terminal
func Check() bool {
	return check(os.Stdin) && check(os.Stderr) && check(os.Stdout)
}

func check(f *os.File) bool {
	if NoTTY {
		return false
	}

	_, skip := os.LookupEnv(envs.SkipTerminalVerification)
	is := term.IsTerminal(int(f.Fd()))

	if skip && !is {
		verbose.Debug("A terminal wasn't found, but system was told to ignore verification")
	}

	return skip || is
}
