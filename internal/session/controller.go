package session

import "scribble/internal/drawable"

// PointerDown starts a stroke, or places and commits a sticker in one step.
func (s *Session) PointerDown(p drawable.Point) {
	if s.drawing {
		return
	}
	switch s.tool.Kind {
	case ToolSticker:
		st := drawable.NewSticker(s.tool.Glyph, s.tool.Size)
		st.AddPoint(p.X, p.Y)
		s.history.Commit(st)
		s.logger.Debug("sticker placed", "glyph", s.tool.Glyph, "x", p.X, "y", p.Y)
	default:
		s.current = drawable.NewStroke(s.tool.Size)
		s.current.AddPoint(p.X, p.Y)
		s.drawing = true
	}
	s.redraw(EventDrawingChanged)
}

// PointerMove extends the stroke in progress, or moves the cursor preview
// when nothing is being drawn.
func (s *Session) PointerMove(p drawable.Point) {
	if !s.drawing {
		s.cursor.SetSize(s.tool.Size)
		s.cursor.AddPoint(p.X, p.Y)
		s.cursorVisible = true
		s.redraw(EventToolMoved)
		return
	}
	if s.minDistance > 0 {
		if last, ok := s.current.Last(); ok && last.DistanceSquared(p) < s.minDistance*s.minDistance {
			return
		}
	}
	s.current.AddPoint(p.X, p.Y)
	s.redraw(EventDrawingChanged)
}

// PointerUp records the final point and commits the stroke.
func (s *Session) PointerUp(p drawable.Point) {
	if !s.drawing {
		return
	}
	s.current.AddPoint(p.X, p.Y)
	s.history.Commit(s.current)
	s.logger.Debug("stroke committed", "points", len(s.current.Points()), "width", s.current.Width())
	s.current = nil
	s.drawing = false
	s.cursor.AddPoint(p.X, p.Y)
	s.redraw(EventDrawingChanged)
}

// PointerLeave hides the cursor preview.
func (s *Session) PointerLeave() {
	if !s.cursorVisible {
		return
	}
	s.cursorVisible = false
	s.redraw(EventToolMoved)
}
