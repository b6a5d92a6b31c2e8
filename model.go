package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scribble/internal/preview"
	"scribble/internal/session"
	"scribble/internal/surface"
)

var (
	statusStyle   = lipgloss.NewStyle().Bold(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func initialModel(config *Config, logger *slog.Logger) (model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fonts, err := surface.LoadFonts(config.Font, config.FallbackFonts...)
	if err != nil {
		return model{}, err
	}
	raster := surface.NewRaster(config.Width, config.Height, fonts)
	sess := session.New(raster,
		session.WithLogger(logger),
		session.WithMinDistance(config.MinDistance),
	)

	stickers := make([]session.Tool, 0, len(config.Stickers))
	for _, glyph := range config.Stickers {
		if tool, ok := session.NewStickerTool(glyph, config.StickerSize); ok {
			if missing := fonts.Missing(tool.Glyph); len(missing) > 0 {
				logger.Warn("sticker glyph not in font", "glyph", tool.Glyph, "missing", string(missing))
			}
			stickers = append(stickers, tool)
		}
	}

	prompt := textinput.New()
	prompt.Prompt = "sticker: "
	prompt.Placeholder = "type a glyph or word"
	prompt.CharLimit = maxGlyphRunes

	return model{
		config:        config,
		fonts:         fonts,
		raster:        raster,
		session:       sess,
		renderer:      preview.NewRenderer(),
		keys:          defaultKeyMap(),
		stickers:      stickers,
		mode:          ModeNormal,
		prompt:        prompt,
		readClipboard: readClipboardText,
		logger:        logger,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		if m.mode != ModeNormal || m.help {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch m.mode {
		case ModeStickerInput:
			return m.handleStickerInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		default:
			return m.handleKey(msg)
		}
	}
	return m, nil
}

func (m *model) relayout() {
	w, h := m.raster.Size()
	m.layout = preview.Fit(m.width, m.height-statusLines, w, h)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p, inside := m.layout.ToSurface(msg.X, msg.Y)
	drawing := m.session.State() == session.StateDrawing

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if inside {
				m.clearMessages()
				m.session.PointerDown(p)
			}
		case tea.MouseButtonWheelUp:
			m.session.SetSize(m.session.Tool().Size + session.DefaultSizeStep)
		case tea.MouseButtonWheelDown:
			m.session.SetSize(m.session.Tool().Size - session.DefaultSizeStep)
		}
	case tea.MouseActionMotion:
		switch {
		case drawing, inside:
			m.session.PointerMove(p)
		default:
			m.session.PointerLeave()
		}
	case tea.MouseActionRelease:
		if drawing {
			m.session.PointerUp(p)
		}
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.config.Confirmations && m.hasWork() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help = true
	case key.Matches(msg, m.keys.ThinPen):
		m.session.SetTool(session.ThinPen)
	case key.Matches(msg, m.keys.ThickPen):
		m.session.SetTool(session.ThickPen)
	case key.Matches(msg, m.keys.Sticker):
		idx := int(msg.String()[0] - '1')
		if idx < len(m.stickers) {
			m.selectSticker(m.stickers[idx])
		}
	case key.Matches(msg, m.keys.CustomSticker):
		m.mode = ModeStickerInput
		m.prompt.Reset()
		return m, m.prompt.Focus()
	case key.Matches(msg, m.keys.PasteSticker):
		m.pasteSticker()
	case key.Matches(msg, m.keys.SizeUp):
		m.session.SetSize(m.session.Tool().Size + session.DefaultSizeStep)
	case key.Matches(msg, m.keys.SizeDown):
		m.session.SetSize(m.session.Tool().Size - session.DefaultSizeStep)
	case key.Matches(msg, m.keys.Undo):
		m.clearMessages()
		m.session.Undo()
	case key.Matches(msg, m.keys.Redo):
		m.clearMessages()
		m.session.Redo()
	case key.Matches(msg, m.keys.Clear):
		if m.config.Confirmations && m.hasWork() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
			return m, nil
		}
		m.session.Clear()
	case key.Matches(msg, m.keys.ExportPNG):
		m.export(ExportPNG)
	case key.Matches(msg, m.keys.ExportPDF):
		m.export(ExportPDF)
	}
	return m, nil
}

func (m model) handleStickerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt.Blur()
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEnter:
		m.prompt.Blur()
		m.mode = ModeNormal
		m.selectCustomSticker(m.prompt.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmClear:
			m.session.Clear()
		case ConfirmQuit:
			return m, tea.Quit
		}
	case "n", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

// selectCustomSticker arms a sticker tool for glyph. Empty input leaves the
// current tool alone.
func (m *model) selectCustomSticker(glyph string) bool {
	tool, ok := session.NewStickerTool(cleanGlyph(glyph), m.config.StickerSize)
	if !ok {
		m.errorMessage = ""
		m.successMessage = "no sticker entered"
		return false
	}
	m.selectSticker(tool)
	return true
}

// selectSticker arms tool and warns when the fonts cannot draw its glyph.
func (m *model) selectSticker(tool session.Tool) {
	m.session.SetTool(tool)
	m.clearMessages()
	if missing := m.fonts.Missing(tool.Glyph); len(missing) > 0 {
		m.errorMessage = fmt.Sprintf("no font has a glyph for %q; add one to fallback_fonts", string(missing))
		m.logger.Warn("sticker glyph not in font", "glyph", tool.Glyph, "missing", string(missing))
	}
}

func (m *model) pasteSticker() {
	text, err := m.readClipboard()
	if err != nil {
		m.successMessage = ""
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.selectCustomSticker(text)
}

// hasWork reports whether clearing or quitting would lose anything,
// including drawables only reachable through redo.
func (m model) hasWork() bool {
	return m.session.CanUndo() || m.session.CanRedo()
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	var b strings.Builder
	if !m.layout.Empty() {
		b.WriteString(m.renderer.Render(m.raster.Image(), m.layout))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeStickerInput:
		return m.prompt.View() + "  (enter to pick, esc to cancel)"
	case ModeConfirm:
		if m.confirmAction == ConfirmQuit {
			return statusStyle.Render("Quit and lose the drawing? (y/n)")
		}
		return statusStyle.Render("Clear the drawing? (y/n)")
	}

	tool := m.session.Tool()
	parts := []string{
		statusStyle.Render(fmt.Sprintf("%s [%g]", tool, tool.Size)),
		capability("undo", m.session.CanUndo()),
		capability("redo", m.session.CanRedo()),
	}
	switch {
	case m.errorMessage != "":
		parts = append(parts, errorStyle.Render("ERROR: "+m.errorMessage))
	case m.successMessage != "":
		parts = append(parts, successStyle.Render(m.successMessage))
	default:
		parts = append(parts, "? for help | q to quit")
	}
	return strings.Join(parts, " | ")
}

func capability(label string, enabled bool) string {
	if enabled {
		return enabledStyle.Render(label)
	}
	return disabledStyle.Render(label)
}

func (m model) helpView() string {
	lines := []string{
		"Scribble Help",
		"=============",
		"",
		"Mouse:",
		"  left drag        draw a stroke with the pen",
		"  left click       stamp the selected sticker",
		"  wheel            change tool size",
		"",
		"Keys:",
	}
	for _, b := range m.keys.bindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-16s %s", h.Key, h.Desc))
	}
	lines = append(lines, "", "Stickers:")
	for i, s := range m.stickers {
		lines = append(lines, fmt.Sprintf("  %d                %s", i+1, s.Glyph))
	}
	lines = append(lines, "", "Press any key to close this help.")
	return strings.Join(lines, "\n")
}
