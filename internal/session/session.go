// Package session owns a single drawing document: its history, the active
// tool, the pointer state machine that records input, and the render
// pipeline that replays everything onto the live surface.
//
// All methods are expected to run on one goroutine (the UI event loop).
// Every mutation redraws synchronously before returning.
package session

import (
	"log/slog"

	"scribble/internal/drawable"
	"scribble/internal/history"
	"scribble/internal/logging"
)

type State int

const (
	StateIdle State = iota
	StateDrawing
	// StatePlacing is reported while idle with a sticker tool armed. The
	// sticker is placed and committed atomically on press.
	StatePlacing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StatePlacing:
		return "placing"
	default:
		return "unknown"
	}
}

type Event int

const (
	// EventDrawingChanged follows any change to what is recorded or to the
	// in-progress stroke.
	EventDrawingChanged Event = iota
	// EventToolMoved follows cursor preview moves and tool changes.
	EventToolMoved
)

type Session struct {
	surface drawable.Surface
	history *history.History
	tool    Tool

	drawing bool
	current *drawable.Stroke

	cursor        *drawable.Cursor
	cursorVisible bool

	minDistance float64
	listeners   []func(Event)
	logger      *slog.Logger
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMinDistance drops move points closer than d to the previously
// recorded point of the stroke in progress. Zero keeps every point.
func WithMinDistance(d float64) Option {
	return func(s *Session) {
		if d > 0 {
			s.minDistance = d
		}
	}
}

func WithTool(t Tool) Option {
	return func(s *Session) {
		s.tool = t
	}
}

// New creates a session rendering onto surface.
func New(surface drawable.Surface, opts ...Option) *Session {
	s := &Session{
		surface: surface,
		tool:    ThinPen,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tool.Size = clampSize(s.tool.Size)
	s.history = history.New(history.WithLogger(s.logger))
	s.cursor = drawable.NewCursor(s.tool.Size)
	return s
}

// Subscribe registers fn to be called synchronously after every redraw.
func (s *Session) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) Surface() drawable.Surface  { return s.surface }
func (s *Session) History() *history.History { return s.history }
func (s *Session) Tool() Tool                 { return s.tool }
func (s *Session) CanUndo() bool              { return s.history.CanUndo() }
func (s *Session) CanRedo() bool              { return s.history.CanRedo() }

func (s *Session) State() State {
	switch {
	case s.drawing:
		return StateDrawing
	case s.tool.Kind == ToolSticker:
		return StatePlacing
	default:
		return StateIdle
	}
}

// Current returns the stroke being drawn, if any.
func (s *Session) Current() (*drawable.Stroke, bool) {
	return s.current, s.drawing
}

// Cursor returns the preview and whether it is currently shown.
func (s *Session) Cursor() (*drawable.Cursor, bool) {
	return s.cursor, s.cursorVisible
}

// SetTool switches the tool used for the next drawable.
func (s *Session) SetTool(t Tool) {
	t.Size = clampSize(t.Size)
	s.tool = t
	s.cursor.SetSize(t.Size)
	s.logger.Debug("tool selected", "tool", t.String(), "size", t.Size)
	s.redraw(EventToolMoved)
}

// SetSize changes the size of the active tool.
func (s *Session) SetSize(v float64) {
	t := s.tool
	t.Size = v
	s.SetTool(t)
}

func (s *Session) Undo() bool {
	if _, ok := s.history.Undo(); !ok {
		return false
	}
	s.redraw(EventDrawingChanged)
	return true
}

func (s *Session) Redo() bool {
	if _, ok := s.history.Redo(); !ok {
		return false
	}
	s.redraw(EventDrawingChanged)
	return true
}

// Clear empties the history and abandons any stroke in progress.
func (s *Session) Clear() {
	s.history.Clear()
	s.drawing = false
	s.current = nil
	s.logger.Debug("cleared")
	s.redraw(EventDrawingChanged)
}

func (s *Session) redraw(ev Event) {
	s.Redraw()
	for _, fn := range s.listeners {
		fn(ev)
	}
}
