package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/henvic/ctxsignal"
	"github.com/henvic/readmegen/cmd/internal/session"
	"github.com/henvic/readmegen/cmd/root"
	"github.com/henvic/readmegen/color"
	"github.com/henvic/readmegen/config"
	"github.com/henvic/readmegen/envs"
	"github.com/henvic/readmegen/errorhandler"
	"github.com/henvic/readmegen/exiterror"
	"github.com/henvic/readmegen/fancy"
	"github.com/henvic/readmegen/formatter"
	"github.com/henvic/readmegen/verbose"
	"github.com/spf13/cobra"
)

// Execute runs the application
func Execute() {
	var panickingFlag = true
	defer verbose.PrintDeferred()
	defer panickingListener(&panickingFlag)

	setErrorHandlingCommandName()
	var code = (&mainProgram{}).run()
	panickingFlag = false

	if code != 0 {
		verbose.PrintDeferred()
		os.Exit(code)
	}
}

// Windows users using Prompt should see no color
func turnColorsOffOnWindows() bool {
	if runtime.GOOS != "windows" {
		return false
	}

	_, windowsPrompt := os.LookupEnv("PROMPT")
	return windowsPrompt
}

func init() {
	_, machineFriendly := os.LookupEnv(envs.MachineFriendly)
	formatter.Human = !machineFriendly

	if isCommand("--no-color") || turnColorsOffOnWindows() {
		color.NoColorFlag = true
	}
}

type mainProgram struct {
	cmd            *cobra.Command
	cmdErr         error
	cmdFriendlyErr error
	config         *config.Config
}

func (m *mainProgram) run() int {
	var err error
	m.config, err = config.Load(config.Path())

	if err != nil {
		printError(errorhandler.Handle(err))
		return exiterror.Code(err)
	}

	session.WithConfig(m.config)

	if m.config.NoColor {
		color.NoColor = true
	}

	return m.executeCommand()
}

func printError(e error) {
	fmt.Fprintf(os.Stderr, "%v\n", fancy.Error(e))
}

func (m *mainProgram) executeCommand() int {
	ctx, cancel := ctxsignal.WithTermination(context.Background())
	defer cancel()

	m.cmd, m.cmdErr = root.Cmd.ExecuteContextC(ctx)

	if m.cmdErr == nil {
		return 0
	}

	if s, err := ctxsignal.Closed(ctx); err == nil {
		verbose.Debug("Interrupted by signal", s)
	}

	m.cmdFriendlyErr = errorhandler.Handle(m.cmdErr)
	verbose.Debug("Error types:", errorhandler.GetTypes(m.cmdErr))
	printError(m.cmdFriendlyErr)
	m.commandErrorConditionalUsage()
	return exiterror.Code(m.cmdErr)
}

func isCommand(cmd string) bool {
	for _, s := range os.Args {
		if s == cmd {
			return true
		}
	}

	return false
}

func setErrorHandlingCommandName() {
	var args []string

	// flags are not part of the command name
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-") {
			break
		}

		args = append(args, a)
	}

	errorhandler.CommandName = strings.Join(args, " ")
}

func panickingListener(panicking *bool) {
	if !*panicking {
		return
	}

	// don't recover from panic to get more context
	errorhandler.Info()
}

func (m *mainProgram) commandErrorConditionalUsage() {
	// this tries to print the usage for a given command only when one of the
	// errors below is caused by cobra
	var emsg = m.cmdErr.Error()
	if strings.HasPrefix(emsg, "unknown flag: ") ||
		strings.HasPrefix(emsg, "unknown shorthand flag: ") ||
		strings.HasPrefix(emsg, "invalid argument ") ||
		strings.HasPrefix(emsg, "bad flag syntax: ") ||
		strings.HasPrefix(emsg, "flag needs an argument: ") {
		if ue := m.cmd.Usage(); ue != nil {
			panic(ue)
		}
	} else if strings.HasPrefix(emsg, "unknown command ") {
		fmt.Fprintln(os.Stderr, fancy.Error(`Run "readmegen --help" for usage.`))
	}
}
