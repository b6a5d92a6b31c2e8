// Package drawable holds the recorded units of user input: freehand strokes,
// stickers, and the hover cursor preview. Each one knows how to render itself
// onto a Surface, either as recorded or uniformly scaled for export.
package drawable

import "image/color"

// Ink is the colour strokes and stickers are drawn with.
var Ink color.Color = color.Black

// CursorColor is the outline colour of the cursor preview.
var CursorColor color.Color = color.Gray{Y: 128}

// Point is a position in surface-local coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Mul returns p with both coordinates multiplied by f.
func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// DistanceSquared returns the squared euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Size() (width, height int)
	Clear()
	SetColor(c color.Color)
	SetLineWidth(w float64)
	SetFontSize(size float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	StrokeCircle(x, y, r float64)
	FillTextCentered(s string, x, y float64)
}

// Drawable is a renderable unit of recorded input.
type Drawable interface {
	// AddPoint appends (Stroke) or replaces (Sticker, Cursor) position data.
	AddPoint(x, y float64)
	// SetSize sets the line width or font size. Rendering always reads the
	// current value.
	SetSize(v float64)
	// Display renders the drawable as recorded.
	Display(s Surface)
	// Scale renders a copy with every coordinate and the size multiplied by
	// factor. The receiver is left untouched.
	Scale(factor float64, s Surface)
}

var (
	_ Drawable = (*Stroke)(nil)
	_ Drawable = (*Sticker)(nil)
	_ Drawable = (*Cursor)(nil)
)
