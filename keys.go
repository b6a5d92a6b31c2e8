package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ThinPen       key.Binding
	ThickPen      key.Binding
	Sticker       key.Binding
	CustomSticker key.Binding
	PasteSticker  key.Binding
	SizeUp        key.Binding
	SizeDown      key.Binding
	Undo          key.Binding
	Redo          key.Binding
	Clear         key.Binding
	ExportPNG     key.Binding
	ExportPDF     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ThinPen:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "thin pen")),
		ThickPen:      key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "thick pen")),
		Sticker:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sticker")),
		CustomSticker: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom sticker")),
		PasteSticker:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "sticker from clipboard")),
		SizeUp:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger")),
		SizeDown:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller")),
		Undo:          key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:          key.NewBinding(key.WithKeys("U", "ctrl+y"), key.WithHelp("U", "redo")),
		Clear:         key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		ExportPNG:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		ExportPDF:     key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export pdf")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{
		k.ThinPen, k.ThickPen, k.Sticker, k.CustomSticker, k.PasteSticker,
		k.SizeUp, k.SizeDown, k.Undo, k.Redo, k.Clear,
		k.ExportPNG, k.ExportPDF, k.Help, k.Quit,
	}
}
