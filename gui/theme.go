//go:build gui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// previewTheme uses a neutral dark background so the white wings and the
// transparent margins of the icons both stay visible.
type previewTheme struct{}

func (p *previewTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{40, 40, 40, 255}
	case theme.ColorNameForeground:
		return color.RGBA{220, 220, 220, 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (p *previewTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (p *previewTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (p *previewTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
