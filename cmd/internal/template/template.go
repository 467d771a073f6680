// Package template prints the usage of the commands as aligned tables.
package template

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/henvic/readmegen/color"
	colortemplate "github.com/henvic/readmegen/color/template"
	"github.com/henvic/readmegen/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flags listed first and last on the usage, in this order
var (
	leadingFlags  = []string{"profile", "flavor", "background", "style", "seed"}
	trailingFlags = []string{"help", "verbose", "defer-verbose"}
)

// Configure template for cobra commands
func Configure(rootCmd *cobra.Command) {
	cobra.AddTemplateFuncs(colortemplate.Functions())
	cobra.AddTemplateFunc("usageTable", usageTable)
	rootCmd.SetUsageTemplate(`{{usageTable .UseLine .Example .Commands .Flags}}`)
	rootCmd.SetHelpTemplate(`{{with or .Long .Short }}{{color FgMagenta BgHiMagenta "!"}} {{. | trim | color FgHiMagenta}}
{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`)
}

type usage struct {
	useLine  string
	example  string
	commands []*cobra.Command
	flagSet  *pflag.FlagSet

	buf *bytes.Buffer
	tw  *formatter.TabWriter

	rows     []flagRow
	hasParam bool
}

type flagRow struct {
	name string
	line string
	used bool
}

func header(columns ...string) string {
	var spacing = ""

	if formatter.Human {
		// compensates the escape sequences of the colored header
		spacing = "     "
	}

	return color.Format(color.FgHiBlack, "  "+strings.Join(columns, "\t"+spacing))
}

func usageTable(useLine, example string, commands []*cobra.Command, f *pflag.FlagSet) string {
	var u = &usage{
		useLine:  strings.TrimSuffix(useLine, " [flags]"),
		example:  example,
		commands: commands,
		flagSet:  f,
		buf:      new(bytes.Buffer),
	}

	u.tw = formatter.NewTabWriter(u.buf)
	u.printUseLine()
	u.printCommands()
	u.printFlags()
	_ = u.tw.Flush()
	return u.buf.String()
}

func (u *usage) printUseLine() {
	var cmdPart = ""

	if u.hasCommands() {
		cmdPart = " [command]"
	}

	fmt.Fprintf(u.buf, "%s %s\n",
		color.Format(color.FgMagenta, color.BgHiMagenta, "!"),
		color.Format(color.FgHiMagenta, "Usage: %s%s [flag]", u.useLine, cmdPart))

	if u.example != "" {
		fmt.Fprintf(u.buf, "%s\n%s\n\n",
			color.Format(color.FgHiMagenta, "  Examples:"),
			u.example)
	}
}

func (u *usage) hasCommands() bool {
	for _, c := range u.commands {
		if c.IsAvailableCommand() {
			return true
		}
	}

	return false
}

func (u *usage) printCommands() {
	if !u.hasCommands() {
		return
	}

	fmt.Fprintln(u.tw, header("Command", "Description"))

	for _, c := range u.commands {
		if c.IsAvailableCommand() {
			fmt.Fprintf(u.tw, "  %v\t%v\n", c.Name(), c.Short)
		}
	}

	// keeps commands and flags on the same columns
	fmt.Fprintln(u.tw, "\t")
}

func (u *usage) printFlags() {
	u.flagSet.VisitAll(func(flag *pflag.Flag) {
		if !flag.Hidden && flag.Value.Type() != "bool" {
			u.hasParam = true
		}
	})

	if u.hasParam {
		fmt.Fprintln(u.tw, header("Flag", "Parameter", "Description"))
	} else {
		fmt.Fprintln(u.tw, header("Flag", "Description"))
	}

	u.flagSet.VisitAll(u.addFlag)

	var lead = u.take(leadingFlags)
	var trail = u.take(trailingFlags)
	var middle = u.take(nil)

	fmt.Fprint(u.tw, lead+middle+trail)
}

// take the lines of the named flags not used yet, or of all of them if names is nil
func (u *usage) take(names []string) string {
	var sb strings.Builder

	var use = func(i int) {
		if !u.rows[i].used {
			u.rows[i].used = true
			sb.WriteString(u.rows[i].line)
		}
	}

	if names == nil {
		for i := range u.rows {
			use(i)
		}

		return sb.String()
	}

	for _, name := range names {
		for i := range u.rows {
			if u.rows[i].name == name {
				use(i)
			}
		}
	}

	return sb.String()
}

func (u *usage) addFlag(flag *pflag.Flag) {
	if flag.Deprecated != "" || flag.Hidden {
		return
	}

	var sb strings.Builder
	sb.WriteString("  ")

	if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
		fmt.Fprintf(&sb, "-%s, ", flag.Shorthand)
	} else {
		sb.WriteString("    ")
	}

	fmt.Fprintf(&sb, "--%s", flag.Name)

	var flagType = flag.Value.Type()

	if flagType == "bool" {
		flagType = ""
	}

	if u.hasParam {
		fmt.Fprintf(&sb, "\t%s\t%s", flagType, flag.Usage)
	} else {
		fmt.Fprintf(&sb, "\t%s", flag.Usage)
	}

	if !isZero(flag) {
		if flag.Value.Type() == "string" {
			fmt.Fprintf(&sb, " (default %q)", flag.DefValue)
		} else {
			fmt.Fprintf(&sb, " (default %s)", flag.DefValue)
		}
	}

	sb.WriteString("\n")

	u.rows = append(u.rows, flagRow{
		name: flag.Name,
		line: sb.String(),
	})
}

func isZero(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "0", "0s", "false", "[]":
		return true
	}

	return false
}
