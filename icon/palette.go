package icon

import (
	"fmt"
	"image/color"
)

var (
	Background  = color.RGBA{R: 74, G: 144, B: 226, A: 255}
	GradientEnd = color.RGBA{R: 53, G: 122, B: 189, A: 255}
	Border      = color.RGBA{R: 46, G: 92, B: 138, A: 255}
	Wing        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Emblem      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Text        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Glow        = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// Label is drawn on icons of MinTextSize and up.
const Label = "WS"

type Style string

const (
	StyleClassic  Style = "classic"
	StyleGradient Style = "gradient"
)

func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "", StyleClassic:
		return StyleClassic, nil
	case StyleGradient:
		return StyleGradient, nil
	}
	return "", fmt.Errorf("unknown style %q (use classic or gradient)", s)
}
