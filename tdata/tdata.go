// Package tdata reads and writes golden files for tests.
package tdata

import (
	"os"
	"path/filepath"
)

// FromFile gets a string data from a file
func FromFile(filename string) string {
	b, err := os.ReadFile(filename)

	if err != nil {
		panic(err)
	}

	return string(b)
}

// ToFile writes a string to a file, creating its directory if needed.
// Used to update golden files.
func ToFile(filename string, content string) {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		panic(err)
	}

	if err := os.WriteFile(filename, []byte(content), 0600); err != nil {
		panic(err)
	}
}
