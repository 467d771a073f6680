/*
Package errorhandler provides a error handling system to be used as
root.Execute() error handler. It should not be used somewhere else.
*/
package errorhandler

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/color"
	"github.com/henvic/readmegen/defaults"
	"github.com/henvic/readmegen/palette"
	"github.com/henvic/readmegen/templates"
	"github.com/henvic/readmegen/verbose"
)

const panicTemplate = `An unrecoverable error has occurred.
Please report this error at
%s

%s
Time: %s
%s`

// CommandName for the local message repository
var CommandName string

// Handle error to a more friendly format
func Handle(err error) error {
	if err == nil {
		return nil
	}

	for _, r := range reasons {
		if !errwrap.Contains(err, r.err.Error()) {
			continue
		}

		msg, ok := tryGetPersonalizedMessage(CommandName, r.name, data{
			Err:     err,
			Flavors: palette.FlavorNames(),
		})

		if !ok {
			return err
		}

		if msg == r.err.Error() || strings.Contains(err.Error(), msg) {
			return err
		}

		return errwrap.Wrapf(msg+"\n{{err}}", err)
	}

	return err
}

func extractParentCommand(cmd string) string {
	var splitCmd = strings.Split(cmd, " ")
	return strings.Join(splitCmd[:len(splitCmd)-1], " ")
}

type data struct {
	Err     error
	Flavors []string
}

// tryGetPersonalizedMessage tries to get a human-friendly error message from the
// command / local error message lists falling back to the parent command
// and at last instance to the global
func tryGetPersonalizedMessage(cmd, reason string, d data) (string, bool) {
	for local := cmd; local != ""; local = extractParentCommand(local) {
		if haystack, ok := reasonCommandMessageOverrides[local]; ok {
			if msg, has := haystack[reason]; has {
				return msg, true
			}
		}
	}

	msg, ok := reasonMessage[reason]

	if !ok {
		return msg, ok
	}

	personalizedMsg, err := templates.Execute(msg, d)

	if err != nil {
		verbose.Debug(errwrap.Wrapf("error getting personalized message: {{err}}", err))
		return msg, ok
	}

	return personalizedMsg, ok
}

// GetTypes get a list of error types separated by ":"
func GetTypes(err error) string {
	var types []string

	errwrap.Walk(err, func(err error) {
		r := reflect.TypeOf(err)
		types = append(types, r.String())
	})

	return strings.Join(types, ":")
}

// Info prints useful system information for debugging
func Info() {
	var version = fmt.Sprintf("Version: %s %s/%s (runtime: %s)",
		defaults.Version,
		runtime.GOOS,
		runtime.GOARCH,
		runtime.Version())

	if defaults.Build != "" {
		version += "\nbuild:" + defaults.Build
	}

	_, _ = fmt.Fprintln(os.Stderr, color.Format(color.FgRed, panicTemplate,
		defaults.IssuesURL,
		version,
		time.Now().Format(time.RubyDate), systemInfo()))
}

func systemInfo() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return fmt.Sprintf(`goroutines: %v | cgo calls: %v
CPUs: %v | Pointer lookups: %v
`, runtime.NumGoroutine(), runtime.NumCgoCall(), runtime.NumCPU(), m.Lookups)
}
