package session

import "scribble/internal/drawable"

// Redraw clears the live surface and replays every committed drawable in
// commit order, then the stroke in progress, then the cursor preview on top
// when not drawing.
func (s *Session) Redraw() {
	s.surface.Clear()
	s.history.Each(func(d drawable.Drawable) {
		d.Display(s.surface)
	})
	if s.drawing {
		s.current.Display(s.surface)
		return
	}
	if s.cursorVisible {
		s.cursor.Display(s.surface)
	}
}

// ExportSize is the live surface size multiplied by factor.
func (s *Session) ExportSize(factor float64) (int, int) {
	w, h := s.surface.Size()
	return int(float64(w) * factor), int(float64(h) * factor)
}

// Export replays the committed drawables onto target, each scaled by
// factor. The cursor and any stroke in progress are left out.
func (s *Session) Export(target drawable.Surface, factor float64) {
	s.history.Each(func(d drawable.Drawable) {
		d.Scale(factor, target)
	})
	s.logger.Debug("exported", "drawables", s.history.Len(), "factor", factor)
}
