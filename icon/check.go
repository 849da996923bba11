package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
)

// ErrDrawingUnavailable means the rasterizer or the PNG codec does not work
// in this build or environment.
var ErrDrawingUnavailable = errors.New("drawing backend unavailable")

// Check draws a probe shape in memory and round-trips it through PNG.
func Check() error {
	const n = 8
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	fillPolygon(img, []Point{{0, 0}, {n, 0}, {n, n}, {0, n}}, Emblem)

	if got := img.RGBAAt(n/2, n/2); got.A < 0xf0 || got.R < 0xf0 {
		return fmt.Errorf("%w: probe pixel %v after fill", ErrDrawingUnavailable, got)
	}

	data, err := EncodePNG(img)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDrawingUnavailable, err)
	}
	back, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: decode probe: %v", ErrDrawingUnavailable, err)
	}
	if back.Bounds() != img.Bounds() {
		return fmt.Errorf("%w: probe bounds %v, want %v", ErrDrawingUnavailable, back.Bounds(), img.Bounds())
	}
	return nil
}
