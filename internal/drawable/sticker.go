package drawable

// Sticker is a glyph stamped at a single position. Its size is the font
// size the glyph is drawn with.
type Sticker struct {
	at     Point
	placed bool
	glyph  string
	size   float64
}

func NewSticker(glyph string, size float64) *Sticker {
	return &Sticker{glyph: glyph, size: size}
}

// AddPoint replaces the sticker position.
func (s *Sticker) AddPoint(x, y float64) {
	s.at = Point{X: x, Y: y}
	s.placed = true
}

func (s *Sticker) SetSize(v float64) {
	s.size = v
}

func (s *Sticker) Point() Point   { return s.at }
func (s *Sticker) Glyph() string  { return s.glyph }
func (s *Sticker) Size() float64  { return s.size }
func (s *Sticker) IsPlaced() bool { return s.placed }

// Display draws the glyph centred horizontally and vertically on its point.
func (s *Sticker) Display(surface Surface) {
	if !s.placed {
		return
	}
	surface.SetColor(Ink)
	surface.SetFontSize(s.size)
	surface.FillTextCentered(s.glyph, s.at.X, s.at.Y)
}

func (s *Sticker) Scale(factor float64, surface Surface) {
	c := *s
	c.at = s.at.Mul(factor)
	c.size = s.size * factor
	c.Display(surface)
}
