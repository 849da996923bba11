package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"iconwings/icon"
)

// previewMaxCols caps the art width; larger icons are downscaled.
const previewMaxCols = 32

type previewFrame struct {
	size int
	art  string
	font string // label font source, empty when the size has no label
}

type previewModel struct {
	frames []previewFrame
	idx    int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newPreviewModel(opts icon.Options) (previewModel, error) {
	var m previewModel
	for _, size := range sizes {
		img, rep, err := icon.Render(size, opts)
		if err != nil {
			return m, err
		}
		f := previewFrame{size: size, art: halfBlocks(img, previewMaxCols)}
		if rep.Text {
			f.font = rep.FontSource.String()
		}
		m.frames = append(m.frames, f)
	}
	return m, nil
}

func runPreview(opts icon.Options) int {
	m, err := newPreviewModel(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: preview: %v\n", err)
		return 1
	}
	return 0
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.frames) == 0 {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.idx = (m.idx + len(m.frames) - 1) % len(m.frames)
	case "right", "l", "tab":
		m.idx = (m.idx + 1) % len(m.frames)
	}
	return m, nil
}

func (m previewModel) View() string {
	if len(m.frames) == 0 {
		return ""
	}
	f := m.frames[m.idx]

	var b strings.Builder
	b.WriteString(titleStyle.Render(icon.FileName(f.size)))
	fmt.Fprintf(&b, "  %dx%d", f.size, f.size)
	if f.font != "" {
		fmt.Fprintf(&b, "  label font: %s", f.font)
	}
	b.WriteString("\n\n")
	b.WriteString(f.art)
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("←/→ switch size • q quit"))
	return b.String()
}

// halfBlocks renders img as terminal art, two pixel rows per text row, using
// the upper half block with the top pixel as foreground and the bottom pixel
// as background.
func halfBlocks(img image.Image, maxCols int) string {
	src := img
	b := img.Bounds()
	if b.Dx() > maxCols {
		h := max(1, b.Dy()*maxCols/b.Dx())
		dst := image.NewRGBA(image.Rect(0, 0, maxCols, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		src, b = dst, dst.Bounds()
	}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgbaAt(src, x, y)
			var bottom color.RGBA
			if y+1 < b.Max.Y {
				bottom = rgbaAt(src, x, y+1)
			}
			sb.WriteString(cell(top, bottom))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func cell(top, bottom color.RGBA) string {
	switch {
	case top.A == 0 && bottom.A == 0:
		return " "
	case bottom.A == 0:
		return lipgloss.NewStyle().Foreground(hexColor(top)).Render("▀")
	case top.A == 0:
		return lipgloss.NewStyle().Foreground(hexColor(bottom)).Render("▄")
	}
	return lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom)).Render("▀")
}
