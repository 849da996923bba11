package icon

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"iconwings/typeface"
)

// fallbackOpts forces the built-in face so results do not depend on the
// fonts installed on the machine running the tests.
var fallbackOpts = Options{Style: StyleClassic, Font: "iconwings-test-missing.ttf"}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -tol && diff <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func render(t *testing.T, size int, opts Options) (*image.RGBA, Report) {
	t.Helper()
	img, rep, err := Render(size, opts)
	if err != nil {
		t.Fatalf("Render(%d): %v", size, err)
	}
	return img, rep
}

func TestGeometryBorderWidth(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{16, 1},
		{31, 1},
		{48, 1},
		{64, 2},
		{128, 4},
	}
	for _, tt := range tests {
		if got := NewGeometry(tt.size).BorderWidth; got != tt.want {
			t.Errorf("BorderWidth(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestGeometryScalesProportionally(t *testing.T) {
	pairs := [][2]int{{16, 48}, {16, 128}, {48, 128}}
	for _, p := range pairs {
		g1, g2 := NewGeometry(p[0]), NewGeometry(p[1])
		want := float64(p[0]) / float64(p[1])
		if got := g1.Radius / g2.Radius; math.Abs(got-want) > 1e-12 {
			t.Errorf("radius ratio %d/%d = %v, want %v", p[0], p[1], got, want)
		}
		if got := g1.Padding / g2.Padding; math.Abs(got-want) > 1e-12 {
			t.Errorf("padding ratio %d/%d = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestGeometryWingsMirrored(t *testing.T) {
	for _, size := range []int{16, 48, 128} {
		g := NewGeometry(size)
		for i := range g.LeftWing {
			l, r := g.LeftWing[i], g.RightWing[i]
			if math.Abs(l.X+r.X-float64(size)) > 1e-9 || l.Y != r.Y {
				t.Errorf("size %d point %d: left %v and right %v are not mirrored", size, i, l, r)
			}
		}
	}
}

func TestGeometryShowText(t *testing.T) {
	tests := []struct {
		size int
		want bool
	}{
		{16, false},
		{47, false},
		{48, true},
		{128, true},
	}
	for _, tt := range tests {
		if got := NewGeometry(tt.size).ShowText; got != tt.want {
			t.Errorf("ShowText(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -16} {
		_, _, err := Render(size, fallbackOpts)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Render(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestRenderLayers(t *testing.T) {
	tests := []struct {
		size       int
		background image.Point
		wing       image.Point // inside the left wing, outside the emblem
	}{
		{48, image.Pt(24, 2), image.Pt(13, 23)},
		{128, image.Pt(64, 6), image.Pt(35, 63)},
	}

	for _, tt := range tests {
		img, rep := render(t, tt.size, fallbackOpts)
		if img.Bounds() != image.Rect(0, 0, tt.size, tt.size) {
			t.Fatalf("size %d: bounds %v", tt.size, img.Bounds())
		}
		if rep.BorderWidth != NewGeometry(tt.size).BorderWidth {
			t.Errorf("size %d: report border width %d", tt.size, rep.BorderWidth)
		}

		if got := img.RGBAAt(0, 0); got != Border {
			t.Errorf("size %d: corner = %v, want border %v", tt.size, got, Border)
		}
		if got := img.RGBAAt(tt.background.X, tt.background.Y); got != Background {
			t.Errorf("size %d: background pixel = %v, want %v", tt.size, got, Background)
		}
		if got := img.RGBAAt(tt.wing.X, tt.wing.Y); !near(got, Wing, 1) {
			t.Errorf("size %d: left wing pixel = %v, want %v", tt.size, got, Wing)
		}
		mx := tt.size - 1 - tt.wing.X
		if got := img.RGBAAt(mx, tt.wing.Y); !near(got, Wing, 1) {
			t.Errorf("size %d: right wing pixel = %v, want %v", tt.size, got, Wing)
		}
	}
}

func TestRenderBorderBand(t *testing.T) {
	for _, size := range []int{16, 48, 128} {
		img, _ := render(t, size, fallbackOpts)
		w := NewGeometry(size).BorderWidth
		row := size / 4
		for x := 0; x < w; x++ {
			if got := img.RGBAAt(x, row); got != Border {
				t.Errorf("size %d: x=%d = %v, want border", size, x, got)
			}
			if got := img.RGBAAt(size-1-x, row); got != Border {
				t.Errorf("size %d: x=%d = %v, want border", size, size-1-x, got)
			}
		}
		if got := img.RGBAAt(w, row); got != Background {
			t.Errorf("size %d: x=%d = %v, want background just inside the border", size, w, got)
		}
	}
}

func TestRenderEmblem(t *testing.T) {
	// Points inside the disk but above the label's cap height.
	tests := []struct {
		size int
		p    image.Point
	}{
		{16, image.Pt(8, 7)},
		{48, image.Pt(24, 18)},
		{128, image.Pt(64, 48)},
	}
	for _, tt := range tests {
		img, _ := render(t, tt.size, fallbackOpts)
		if got := img.RGBAAt(tt.p.X, tt.p.Y); !near(got, Emblem, 1) {
			t.Errorf("size %d: emblem pixel %v = %v, want %v", tt.size, tt.p, got, Emblem)
		}
	}
}

// whiteInEmblem counts pure white pixels whose centers sit well inside the
// emblem disk. The emblem covers the wings there, so only the label can
// leave white behind.
func whiteInEmblem(img *image.RGBA, g Geometry) int {
	n := 0
	inner := g.Radius - 1
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			dx := float64(x) + 0.5 - g.CenterX
			dy := float64(y) + 0.5 - g.CenterY
			if math.Hypot(dx, dy) > inner {
				continue
			}
			if img.RGBAAt(x, y) == Text {
				n++
			}
		}
	}
	return n
}

func TestRenderLabelOnlyFrom48(t *testing.T) {
	tests := []struct {
		size     int
		wantText bool
	}{
		{16, false},
		{48, true},
		{128, true},
	}
	for _, tt := range tests {
		img, rep := render(t, tt.size, fallbackOpts)
		if rep.Text != tt.wantText {
			t.Errorf("size %d: report Text = %v, want %v", tt.size, rep.Text, tt.wantText)
		}
		n := whiteInEmblem(img, NewGeometry(tt.size))
		if tt.wantText && n == 0 {
			t.Errorf("size %d: no label pixels inside the emblem", tt.size)
		}
		if !tt.wantText && n != 0 {
			t.Errorf("size %d: %d unexpected label pixels inside the emblem", tt.size, n)
		}
	}
}

func TestRenderFallbackReported(t *testing.T) {
	_, rep := render(t, 128, fallbackOpts)
	if rep.FontSource != typeface.Fallback {
		t.Errorf("FontSource = %v, want fallback", rep.FontSource)
	}
	if rep.FontReason == "" {
		t.Error("FontReason is empty for fallback")
	}
}

func TestRenderPrimaryFont(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "arial.ttf"), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	img, rep := render(t, 128, Options{FontDirs: []string{dir}})
	if rep.FontSource != typeface.Primary {
		t.Fatalf("FontSource = %v (%s), want primary", rep.FontSource, rep.FontReason)
	}
	if !strings.HasSuffix(rep.FontPath, "arial.ttf") {
		t.Errorf("FontPath = %q", rep.FontPath)
	}
	if whiteInEmblem(img, NewGeometry(128)) == 0 {
		t.Error("no label pixels inside the emblem")
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, size := range []int{16, 48, 128} {
		a, _ := render(t, size, fallbackOpts)
		b, _ := render(t, size, fallbackOpts)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("size %d: two renders differ", size)
		}
	}
}

func TestRenderGradientStyle(t *testing.T) {
	opts := fallbackOpts
	opts.Style = StyleGradient
	img, _ := render(t, 128, opts)

	tl := img.RGBAAt(5, 5)
	br := img.RGBAAt(122, 122)
	if tl == br {
		t.Errorf("gradient corners are equal: %v", tl)
	}
	if !near(tl, Background, 3) {
		t.Errorf("top-left = %v, want close to %v", tl, Background)
	}
	if !near(br, GradientEnd, 3) {
		t.Errorf("bottom-right = %v, want close to %v", br, GradientEnd)
	}

	// Glow frame sits on the rectangle inset by padding/2.
	if got := img.RGBAAt(12, 64); !near(got, Glow, 1) {
		t.Errorf("glow pixel = %v, want %v", got, Glow)
	}
	classic, _ := render(t, 128, fallbackOpts)
	if got := classic.RGBAAt(12, 64); got != Background {
		t.Errorf("classic style pixel (12,64) = %v, want background", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleClassic, false},
		{"classic", StyleClassic, false},
		{"gradient", StyleGradient, false},
		{"neon", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func goregularFace(t *testing.T, size int) font.Face {
	t.Helper()
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { face.Close() })
	return face
}

func TestLabelOrigin(t *testing.T) {
	g := NewGeometry(128)
	primary := goregularFace(t, g.FontSize)
	pm := primary.Metrics()

	tests := []struct {
		name string
		res  typeface.Resolution
		want fixed.Point26_6
	}{
		{
			// Top of the text box at CenterY - FontSize/2, baseline one ascent below.
			name: "primary",
			res:  typeface.Resolution{Face: primary, Source: typeface.Primary},
			want: fixed.Point26_6{
				X: toFixed(g.CenterX) - font.MeasureString(primary, Label)/2,
				Y: toFixed(g.CenterY) - fixed.I(g.FontSize)/2 + pm.Ascent,
			},
		},
		{
			// 7px advance per glyph, ascent 11, descent 2
			name: "fallback",
			res:  typeface.Resolution{Face: basicfont.Face7x13, Source: typeface.Fallback},
			want: fixed.Point26_6{
				X: fixed.I(64 - 7),
				Y: fixed.I(64) - fixed.I(13)/2 + fixed.I(11),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := labelOrigin(g, tt.res); got != tt.want {
				t.Errorf("labelOrigin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLabelOriginPrimaryIgnoresFaceHeight(t *testing.T) {
	g := NewGeometry(128)
	face := goregularFace(t, g.FontSize)
	m := face.Metrics()

	// The primary font is centered on its nominal size even though its
	// ascent+descent differs from it.
	if m.Ascent+m.Descent == fixed.I(g.FontSize) {
		t.Skip("face height equals nominal size")
	}
	primary := labelOrigin(g, typeface.Resolution{Face: face, Source: typeface.Primary})
	asFallback := labelOrigin(g, typeface.Resolution{Face: face, Source: typeface.Fallback})
	if primary.Y == asFallback.Y {
		t.Errorf("primary baseline %v matches the line-height placement", primary.Y)
	}
	if primary.X != asFallback.X {
		t.Errorf("horizontal placement depends on source: %v vs %v", primary.X, asFallback.X)
	}
}

func TestSaveWritesPNG(t *testing.T) {
	dir := t.TempDir()
	for _, size := range []int{16, 48, 128} {
		img, _ := render(t, size, fallbackOpts)
		path := filepath.Join(dir, FileName(size))
		n, err := Save(path, img)
		if err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != n {
			t.Errorf("%s: Save reported %d bytes, file has %d", path, n, len(data))
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s: %dx%d, want %dx%d", path, cfg.Width, cfg.Height, size, size)
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(16))
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	img, _ := render(t, 16, fallbackOpts)
	if _, err := Save(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("overwritten file is not a PNG: %v", err)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(48); got != "icon48.png" {
		t.Errorf("FileName(48) = %q", got)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, size := range []int{16, 48, 128} {
		rep, err := WriteFile(dir, size, fallbackOpts)
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(dir, FileName(size)); rep.Path != want {
			t.Errorf("Path = %q, want %q", rep.Path, want)
		}
		if rep.Size != size || rep.Text != (size >= MinTextSize) {
			t.Errorf("size %d: report %+v", size, rep)
		}

		data, err := os.ReadFile(rep.Path)
		if err != nil {
			t.Fatal(err)
		}
		if rep.Bytes != len(data) {
			t.Errorf("size %d: Bytes = %d, file has %d", size, rep.Bytes, len(data))
		}
		got, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		want, _ := render(t, size, fallbackOpts)
		if got.Bounds() != want.Bounds() {
			t.Fatalf("size %d: bounds %v", size, got.Bounds())
		}
		if c := color.RGBAModel.Convert(got.At(size/2, 1)).(color.RGBA); c != want.RGBAAt(size/2, 1) {
			t.Errorf("size %d: saved pixel %v, rendered %v", size, c, want.RGBAAt(size/2, 1))
		}
	}
}

func TestWriteFileErrors(t *testing.T) {
	if _, err := WriteFile(t.TempDir(), 0, fallbackOpts); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("size 0: err = %v, want ErrInvalidSize", err)
	}
	missing := filepath.Join(t.TempDir(), "missing")
	if _, err := WriteFile(missing, 16, fallbackOpts); err == nil {
		t.Error("expected error for a directory that does not exist")
	}
}

func TestEncodeICO(t *testing.T) {
	sizes := []int{16, 48, 128}
	var imgs []image.Image
	for _, size := range sizes {
		img, _ := render(t, size, fallbackOpts)
		imgs = append(imgs, img)
	}

	var buf bytes.Buffer
	if err := EncodeICO(&buf, imgs); err != nil {
		t.Fatal(err)
	}

	got, err := ico.DecodeAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(sizes) {
		t.Fatalf("%d entries, want %d", len(got), len(sizes))
	}
	for i, size := range sizes {
		b := got[i].Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("entry %d: %dx%d, want %d", i, b.Dx(), b.Dy(), size)
		}
		// Top border row is a flat fill, so it survives any entry encoding.
		c := color.RGBAModel.Convert(got[i].At(b.Min.X+size/2, b.Min.Y)).(color.RGBA)
		if c != Border {
			t.Errorf("entry %d: top border pixel %v, want %v", i, c, Border)
		}
	}
}

func TestEncodeICORejects(t *testing.T) {
	if err := EncodeICO(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected error for no images")
	}
	big := image.NewRGBA(image.Rect(0, 0, MaxICOSize+44, MaxICOSize+44))
	if err := EncodeICO(&bytes.Buffer{}, []image.Image{big}); err == nil {
		t.Error("expected error for 300x300 image")
	}
}

func TestWriteICO(t *testing.T) {
	img, _ := render(t, 16, fallbackOpts)
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := WriteICO(path, []image.Image{img}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Bounds().Dx() != 16 {
		t.Errorf("decoded %d entries", len(got))
	}
}
