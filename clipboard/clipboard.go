// Package clipboard puts generated file locations on the system clipboard.
package clipboard

import (
	"strings"

	cb "github.com/atotto/clipboard"
)

// Unsupported reports whether no clipboard utility is available.
func Unsupported() bool {
	return cb.Unsupported
}

// CopyPaths places paths on the clipboard, one per line.
func CopyPaths(paths []string) error {
	return cb.WriteAll(strings.Join(paths, "\n"))
}

// Read returns the current clipboard text.
func Read() (string, error) {
	return cb.ReadAll()
}
