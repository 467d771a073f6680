//go:build windows

package figures

const (
	// Tick symbol
	Tick = "√"

	// Square symbol
	Square = "█"

	// Bullet symbol
	Bullet = "*"
)
