// Package drawabletest provides a Surface that records the calls made on it.
package drawabletest

import (
	"fmt"
	"image/color"

	"scribble/internal/drawable"
)

// Op is one recorded surface call.
type Op struct {
	Name string
	Args []float64
	Text string
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s(%q %v)", o.Name, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Segment is a straight line drawn between two points.
type Segment struct {
	From, To drawable.Point
	Width    float64
}

// Text is a centred text draw.
type Text struct {
	Text string
	At   drawable.Point
	Size float64
}

// Circle is a stroked circle.
type Circle struct {
	Center drawable.Point
	Radius float64
	Width  float64
}

// Recorder is a drawable.Surface that keeps every call in order and derives
// the segments, texts and circles that a real surface would have painted.
type Recorder struct {
	Width, Height int

	Ops      []Op
	Segments []Segment
	Texts    []Text
	Circles  []Circle
	Clears   int

	lineWidth float64
	fontSize  float64
	pen       drawable.Point
	penDown   bool
	pending   []Segment
}

var _ drawable.Surface = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height, lineWidth: 1}
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{Width: r.Width, Height: r.Height, lineWidth: 1}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear() {
	r.record("Clear", "")
	r.Clears++
	r.Segments = nil
	r.Texts = nil
	r.Circles = nil
	r.pending = nil
	r.penDown = false
}

func (r *Recorder) SetColor(c color.Color) {
	cr, cg, cb, ca := c.RGBA()
	r.record("SetColor", "", float64(cr>>8), float64(cg>>8), float64(cb>>8), float64(ca>>8))
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record("SetLineWidth", "", w)
	r.lineWidth = w
}

func (r *Recorder) SetFontSize(size float64) {
	r.record("SetFontSize", "", size)
	r.fontSize = size
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("MoveTo", "", x, y)
	r.pen = drawable.Pt(x, y)
	r.penDown = true
}

func (r *Recorder) LineTo(x, y float64) {
	r.record("LineTo", "", x, y)
	to := drawable.Pt(x, y)
	if r.penDown {
		r.pending = append(r.pending, Segment{From: r.pen, To: to})
	}
	r.pen = to
	r.penDown = true
}

func (r *Recorder) Stroke() {
	r.record("Stroke", "")
	for _, s := range r.pending {
		s.Width = r.lineWidth
		r.Segments = append(r.Segments, s)
	}
	r.pending = nil
	r.penDown = false
}

func (r *Recorder) StrokeCircle(x, y, radius float64) {
	r.record("StrokeCircle", "", x, y, radius)
	r.Circles = append(r.Circles, Circle{Center: drawable.Pt(x, y), Radius: radius, Width: r.lineWidth})
}

func (r *Recorder) FillTextCentered(s string, x, y float64) {
	r.record("FillTextCentered", s, x, y)
	r.Texts = append(r.Texts, Text{Text: s, At: drawable.Pt(x, y), Size: r.fontSize})
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) record(name, text string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args, Text: text})
}
