package drawable

// Stroke is a freehand polyline with a fixed line width.
type Stroke struct {
	points []Point
	width  float64
}

func NewStroke(width float64) *Stroke {
	return &Stroke{width: width}
}

// AddPoint appends unconditionally; every reported position becomes a
// segment endpoint.
func (s *Stroke) AddPoint(x, y float64) {
	s.points = append(s.points, Point{X: x, Y: y})
}

func (s *Stroke) SetSize(v float64) {
	s.width = v
}

func (s *Stroke) Width() float64 {
	return s.width
}

// Points returns a copy of the recorded points.
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Last returns the most recently added point.
func (s *Stroke) Last() (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Display draws straight segments between consecutive points. A stroke
// with fewer than two points draws nothing.
func (s *Stroke) Display(surface Surface) {
	if len(s.points) < 2 {
		return
	}
	surface.SetColor(Ink)
	surface.SetLineWidth(s.width)
	surface.MoveTo(s.points[0].X, s.points[0].Y)
	for _, p := range s.points[1:] {
		surface.LineTo(p.X, p.Y)
	}
	surface.Stroke()
}

func (s *Stroke) Scale(factor float64, surface Surface) {
	s.scaled(factor).Display(surface)
}

func (s *Stroke) scaled(factor float64) *Stroke {
	c := &Stroke{
		points: make([]Point, len(s.points)),
		width:  s.width * factor,
	}
	for i, p := range s.points {
		c.points[i] = p.Mul(factor)
	}
	return c
}
