// Package fancy formats messages for the terminal.
package fancy

import (
	"fmt"
	"strings"

	"github.com/henvic/readmegen/color"
)

// Info formatter
func Info(a interface{}) string {
	return invertedBlockFormatter(color.FgHiYellow, color.BgYellow, "!", a)
}

// Success formatter
func Success(a interface{}) string {
	return invertedBlockFormatter(color.FgHiGreen, color.BgGreen, "!", a)
}

// Error formatter
func Error(a interface{}) string {
	return invertedBlockFormatter(color.FgHiRed, color.BgRed, "!", formatError(a))
}

// Tip formatter
func Tip(a interface{}) string {
	return fmt.Sprintf("%v%v%v", color.Format(color.FgHiMagenta, "["), a, color.Format(color.FgHiMagenta, "]"))
}

// formatError capitalizes the message and ends it with a period
// unless it spans several lines
func formatError(a interface{}) string {
	var errMsg = fmt.Sprintf("%v", a)

	if errMsg == "" {
		return ""
	}

	errMsg = strings.ToUpper(errMsg[0:1]) + errMsg[1:]

	if strings.Contains(errMsg, "\n") {
		return errMsg
	}

	switch errMsg[len(errMsg)-1] {
	case '!', '.', '?':
		return errMsg
	}

	return errMsg + "."
}

func invertedBlockFormatter(fg, bg color.Attribute, prefix, a interface{}) string {
	var q = color.Format(fg, bg, prefix) + " "
	var parts = strings.Split(fmt.Sprintf("%v", a), "\n")

	for i, p := range parts {
		parts[i] = q + color.Format(fg, p)
	}

	return strings.Join(parts, "\n")
}
