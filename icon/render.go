// Package icon draws the application icon at a given pixel size.
//
// Layers are painted back to front: background, border, wings, emblem,
// label (48px and up) and, for the gradient style, a glow frame. Each layer
// is opaque and fully replaces what lies beneath it.
package icon

import (
	"errors"
	"fmt"
	"image"

	"iconwings/typeface"
)

var ErrInvalidSize = errors.New("icon size must be positive")

type Options struct {
	Style    Style
	Font     string   // preferred font file, typeface.DefaultName when empty
	FontDirs []string // searched for Font when it is not a usable path
}

// Report describes one rendered icon.
type Report struct {
	Size        int
	Path        string // set by WriteFile
	Bytes       int    // set by WriteFile
	BorderWidth int
	Text        bool
	FontSource  typeface.Source
	FontPath    string
	FontReason  string
}

// FileName returns the conventional output name for size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

func Render(size int, opts Options) (*image.RGBA, Report, error) {
	if size <= 0 {
		return nil, Report{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	g := NewGeometry(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rep := Report{Size: size, BorderWidth: g.BorderWidth}

	fillBackground(img, opts.Style)
	strokeBorder(img, g.BorderWidth, Border)
	fillPolygon(img, g.LeftWing[:], Wing)
	fillPolygon(img, g.RightWing[:], Wing)
	fillCircle(img, g.CenterX, g.CenterY, g.Radius, Emblem)

	if g.ShowText {
		name := opts.Font
		if name == "" {
			name = typeface.DefaultName
		}
		res := typeface.Resolve(name, float64(g.FontSize), opts.FontDirs)
		drawLabel(img, g, res)
		res.Face.Close()

		rep.Text = true
		rep.FontSource = res.Source
		rep.FontPath = res.Path
		rep.FontReason = res.Reason
	}

	if opts.Style == StyleGradient {
		strokeFrame(img, g.Padding/2, g.GlowWidth, Glow)
	}
	return img, rep, nil
}
