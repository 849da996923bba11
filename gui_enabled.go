//go:build gui

package main

import (
	"fmt"
	"os"
	"runtime"

	"iconwings/gui"
	"iconwings/icon"
)

func runGUI(opts icon.Options) int {
	// Fyne/GLFW needs the main OS thread.
	runtime.LockOSThread()

	var frames []gui.Frame
	for _, size := range sizes {
		img, _, err := icon.Render(size, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		frames = append(frames, gui.Frame{Name: icon.FileName(size), Image: img})
	}
	if err := gui.Show("iconwings", frames); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
