package drawable

// cursorLineWidth is the outline width of the cursor circle at scale 1.
const cursorLineWidth = 1

// Cursor previews the active tool's position and size while the pointer
// hovers. It is never committed to history.
type Cursor struct {
	at     Point
	placed bool
	size   float64
}

func NewCursor(size float64) *Cursor {
	return &Cursor{size: size}
}

func (c *Cursor) AddPoint(x, y float64) {
	c.at = Point{X: x, Y: y}
	c.placed = true
}

func (c *Cursor) SetSize(v float64) {
	c.size = v
}

func (c *Cursor) Point() Point  { return c.at }
func (c *Cursor) Size() float64 { return c.size }

// Display draws an outlined circle whose diameter is the cursor size.
func (c *Cursor) Display(surface Surface) {
	c.display(surface, 1)
}

func (c *Cursor) Scale(factor float64, surface Surface) {
	s := *c
	s.at = c.at.Mul(factor)
	s.size = c.size * factor
	s.display(surface, factor)
}

func (c *Cursor) display(surface Surface, factor float64) {
	if !c.placed {
		return
	}
	surface.SetColor(CursorColor)
	surface.SetLineWidth(cursorLineWidth * factor)
	surface.StrokeCircle(c.at.X, c.at.Y, c.size/2)
}
