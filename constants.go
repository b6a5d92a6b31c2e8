package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeStickerInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
)

type ExportFormat int

const (
	ExportPNG ExportFormat = iota
	ExportPDF
)

func (f ExportFormat) Ext() string {
	if f == ExportPDF {
		return "pdf"
	}
	return "png"
}

const (
	statusLines   = 1
	maxGlyphRunes = 16
	rcFile        = ".scribblerc"
)
