//go:build gui

// Package gui shows rendered icons in a desktop window.
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type Frame struct {
	Name  string
	Image image.Image
}

// Show opens a window with the frames side by side at their native pixel
// size and blocks until it is closed.
func Show(title string, frames []Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("nothing to show")
	}

	a := app.NewWithID("io.iconwings.preview")
	a.Settings().SetTheme(&previewTheme{})
	w := a.NewWindow(title)

	items := make([]fyne.CanvasObject, 0, len(frames))
	for _, f := range frames {
		img := canvas.NewImageFromImage(f.Image)
		img.FillMode = canvas.ImageFillOriginal
		img.ScaleMode = canvas.ImageScalePixels
		items = append(items, container.NewVBox(
			container.NewCenter(img),
			widget.NewLabelWithStyle(f.Name, fyne.TextAlignCenter, fyne.TextStyle{}),
		))
	}

	w.SetContent(container.NewPadded(container.NewHBox(items...)))
	w.SetFixedSize(true)
	w.ShowAndRun()
	return nil
}
