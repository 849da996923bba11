// Package doctor checks that icons can be produced on this machine and hosts
// the opt-in font bootstrap.
package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"iconwings/icon"
	"iconwings/typeface"
)

type Options struct {
	Font     string
	FontDirs []string
	OutDir   string
}

// checkDrawing is replaced in tests.
var checkDrawing = icon.Check

// Run executes the diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(w io.Writer, opts Options) int {
	fmt.Fprintln(w, "iconwings doctor - system diagnostics")
	fmt.Fprintln(w, "=====================================")

	allPass := true
	if !checkBackend(w) {
		allPass = false
	}
	if !checkFont(w, opts) {
		allPass = false
	}
	if !checkOutput(w, opts.OutDir) {
		allPass = false
	}

	fmt.Fprintln(w)
	if allPass {
		fmt.Fprintln(w, "All checks passed!")
		return 0
	}
	fmt.Fprintln(w, "Some checks failed. See details above.")
	return 1
}

func checkBackend(w io.Writer) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[1/3] Drawing backend")
	if err := checkDrawing(); err != nil {
		fmt.Fprintf(w, "  FAIL: %v\n", err)
		return false
	}
	fmt.Fprintln(w, "  PASS: rasterizer and PNG codec work")
	return true
}

// checkFont never fails: a missing font only means the built-in face is used.
func checkFont(w io.Writer, opts Options) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[2/3] Label font")

	name := opts.Font
	if name == "" {
		name = typeface.DefaultName
	}
	res := typeface.Resolve(name, float64(icon.NewGeometry(128).FontSize), opts.FontDirs)
	defer res.Face.Close()

	if res.Source == typeface.Primary {
		fmt.Fprintf(w, "  PASS: %s\n", res.Path)
		return true
	}
	fmt.Fprintf(w, "  PASS: using built-in fallback face (%s)\n", res.Reason)
	fmt.Fprintln(w, "  Note: run with -setup to install fonts")
	return true
}

func checkOutput(w io.Writer, dir string) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[3/3] Output directory")

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(w, "  FAIL: cannot create %s: %v\n", dir, err)
		return false
	}
	f, err := os.CreateTemp(dir, ".iconwings-probe-*")
	if err != nil {
		fmt.Fprintf(w, "  FAIL: %s is not writable: %v\n", dir, err)
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	fmt.Fprintf(w, "  PASS: %s is writable\n", abs)
	return true
}
