package icon

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Geometry holds every shape parameter of an icon. All of it scales with
// Size; nothing else feeds into it.
type Geometry struct {
	Size        int
	CenterX     float64
	CenterY     float64
	Padding     float64
	Radius      float64
	BorderWidth int
	GlowWidth   int
	FontSize    int
	ShowText    bool
	LeftWing    [5]Point
	RightWing   [5]Point
}

// MinTextSize is the smallest icon that carries the label.
const MinTextSize = 48

func NewGeometry(size int) Geometry {
	s := float64(size)
	cx, cy := s/2, s/2
	p := s * 0.2

	return Geometry{
		Size:        size,
		CenterX:     cx,
		CenterY:     cy,
		Padding:     p,
		Radius:      s * 0.15,
		BorderWidth: max(1, size/32),
		GlowWidth:   max(1, size/64),
		FontSize:    int(s * 0.25),
		ShowText:    size >= MinTextSize,
		LeftWing: [5]Point{
			{p, cy},
			{cx - p/2, cy - p/2},
			{cx, cy},
			{cx - p/2, cy + p/2},
			{p, cy},
		},
		RightWing: [5]Point{
			{s - p, cy},
			{cx + p/2, cy - p/2},
			{cx, cy},
			{cx + p/2, cy + p/2},
			{s - p, cy},
		},
	}
}
