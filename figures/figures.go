//go:build !windows

// Package figures has the symbols used on the terminal output.
// Based on https://github.com/sindresorhus/figures
package figures

const (
	// Tick symbol
	Tick = "✔"

	// Square symbol
	Square = "▇"

	// Bullet symbol
	Bullet = "●"
)
