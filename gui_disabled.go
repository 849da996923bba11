//go:build !gui

package main

import (
	"fmt"
	"os"

	"iconwings/icon"
)

func runGUI(icon.Options) int {
	fmt.Fprintln(os.Stderr, "iconwings: built without GUI support (rebuild with -tags gui)")
	return 1
}
