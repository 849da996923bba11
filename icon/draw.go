package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"iconwings/typeface"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

func fillBackground(img *image.RGBA, style Style) {
	if style != StyleGradient {
		draw.Draw(img, img.Bounds(), &image.Uniform{Background}, image.Point{}, draw.Src)
		return
	}

	// Diagonal gradient from the top-left corner to the bottom-right one.
	b := img.Bounds()
	span := float64(b.Dx() + b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := (float64(x-b.Min.X) + float64(y-b.Min.Y) + 1) / span
			img.SetRGBA(x, y, lerp(Background, GradientEnd, t))
		}
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p) + (float64(q)-float64(p))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// strokeBorder paints a band of width pixels along the inside of each edge.
func strokeBorder(img *image.RGBA, width int, c color.Color) {
	b := img.Bounds()
	width = min(width, b.Dx(), b.Dy())
	src := &image.Uniform{c}
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+width),
		image.Rect(b.Min.X, b.Max.Y-width, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+width, b.Max.Y),
		image.Rect(b.Max.X-width, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
}

func newRasterizer(img *image.RGBA) *vector.Rasterizer {
	b := img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func paint(img *image.RGBA, z *vector.Rasterizer, c color.Color) {
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func fillPolygon(img *image.RGBA, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	z := newRasterizer(img)
	polygon(z, pts)
	paint(img, z, c)
}

func polygon(z *vector.Rasterizer, pts []Point) {
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	z := newRasterizer(img)
	k := kappa * r
	f := func(v float64) float32 { return float32(v) }

	z.MoveTo(f(cx+r), f(cy))
	z.CubeTo(f(cx+r), f(cy+k), f(cx+k), f(cy+r), f(cx), f(cy+r))
	z.CubeTo(f(cx-k), f(cy+r), f(cx-r), f(cy+k), f(cx-r), f(cy))
	z.CubeTo(f(cx-r), f(cy-k), f(cx-k), f(cy-r), f(cx), f(cy-r))
	z.CubeTo(f(cx+k), f(cy-r), f(cx+r), f(cy-k), f(cx+r), f(cy))
	z.ClosePath()
	paint(img, z, c)
}

// strokeFrame draws a rectangular outline of the given width centered on the
// rectangle inset by inset pixels from every edge.
func strokeFrame(img *image.RGBA, inset float64, width int, c color.Color) {
	b := img.Bounds()
	w := float64(width) / 2
	outerMin, innerMin := inset-w, inset+w
	outerMaxX, innerMaxX := float64(b.Dx())-inset+w, float64(b.Dx())-inset-w
	outerMaxY, innerMaxY := float64(b.Dy())-inset+w, float64(b.Dy())-inset-w
	if innerMaxX <= innerMin || innerMaxY <= innerMin {
		return
	}

	z := newRasterizer(img)
	// Outer clockwise, inner counter-clockwise: the inner area cancels out.
	polygon(z, []Point{
		{outerMin, outerMin}, {outerMaxX, outerMin}, {outerMaxX, outerMaxY}, {outerMin, outerMaxY},
	})
	polygon(z, []Point{
		{innerMin, innerMin}, {innerMin, innerMaxY}, {innerMaxX, innerMaxY}, {innerMaxX, innerMin},
	})
	paint(img, z, c)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// labelOrigin returns the baseline origin that centers Label on the canvas.
// The primary font is centered on its nominal size; the fallback face has a
// fixed size of its own, so its real line height is used instead.
func labelOrigin(g Geometry, res typeface.Resolution) fixed.Point26_6 {
	m := res.Face.Metrics()
	width := font.MeasureString(res.Face, Label)
	height := fixed.I(g.FontSize)
	if res.Source == typeface.Fallback {
		height = m.Ascent + m.Descent
	}
	top := toFixed(g.CenterY) - height/2
	return fixed.Point26_6{
		X: toFixed(g.CenterX) - width/2,
		Y: top + m.Ascent,
	}
}

func drawLabel(img *image.RGBA, g Geometry, res typeface.Resolution) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Text),
		Face: res.Face,
		Dot:  labelOrigin(g, res),
	}
	d.DrawString(Label)
}
