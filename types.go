package main

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"

	"scribble/internal/preview"
	"scribble/internal/session"
	"scribble/internal/surface"
)

type model struct {
	width    int
	height   int
	config   *Config
	fonts    *surface.Fonts
	raster   *surface.Raster
	session  *session.Session
	renderer *preview.Renderer
	layout   preview.Layout
	keys     keyMap
	stickers []session.Tool

	mode          Mode
	confirmAction ConfirmAction
	prompt        textinput.Model
	help          bool

	errorMessage   string
	successMessage string

	readClipboard func() (string, error)
	logger        *slog.Logger
}
