// Package typeface resolves the font used for icon labels. A named font file
// is preferred; when it cannot be found or parsed a built-in face is used.
package typeface

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const DefaultName = "arial.ttf"

type Source int

const (
	Primary Source = iota
	Fallback
)

func (s Source) String() string {
	switch s {
	case Primary:
		return "primary"
	case Fallback:
		return "fallback"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Resolution is the outcome of Resolve. Face is always usable.
type Resolution struct {
	Face   font.Face
	Source Source
	Path   string  // empty for Fallback
	Size   float64 // requested size in points
	Reason string  // why the fallback was taken
}

var errNotFound = errors.New("font not found")

// Resolve looks for name as a path and then inside dirs, and builds a face at
// size points. It never fails: any problem yields the fixed-size fallback face.
func Resolve(name string, size float64, dirs []string) Resolution {
	path, err := Locate(name, dirs)
	if err != nil {
		return fallback(size, err)
	}
	face, err := load(path, size)
	if err != nil {
		return fallback(size, fmt.Errorf("%s: %w", path, err))
	}
	return Resolution{Face: face, Source: Primary, Path: path, Size: size}
}

func fallback(size float64, err error) Resolution {
	return Resolution{
		Face:   basicfont.Face7x13,
		Source: Fallback,
		Size:   size,
		Reason: err.Error(),
	}
}

// substitutes maps a font file name (lower case) to metric-compatible files
// tried when it is not installed.
var substitutes = map[string][]string{
	"arial.ttf": {"LiberationSans-Regular.ttf"},
}

// Locate returns the path of the font file called name. A file name match
// inside dirs ignores case, so "arial.ttf" finds "Arial.ttf". When name is
// missing from every directory its known substitutes are tried in order.
func Locate(name string, dirs []string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", errNotFound)
	}
	if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
		return name, nil
	}

	base := filepath.Base(name)
	candidates := append([]string{base}, substitutes[strings.ToLower(base)]...)
	for _, c := range candidates {
		if path := find(c, dirs); path != "" {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", errNotFound, name)
}

func find(base string, dirs []string) string {
	for _, dir := range dirs {
		var found string
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// unreadable entries are skipped
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), base) {
				found = path
				return filepath.SkipAll
			}
			return nil
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func load(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
