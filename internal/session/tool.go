package session

import (
	"fmt"
	"strings"
)

type ToolKind int

const (
	ToolPen ToolKind = iota
	ToolSticker
)

func (k ToolKind) String() string {
	switch k {
	case ToolPen:
		return "pen"
	case ToolSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Tool is the configuration applied to the next drawable created. Changing
// it never touches drawables already recorded.
type Tool struct {
	Kind  ToolKind
	Size  float64
	Glyph string
}

const (
	ThinPenSize     = 2
	ThickPenSize    = 6
	StickerSize     = 50
	MinSize         = 1
	MaxSize         = 200
	DefaultSizeStep = 1
)

var (
	ThinPen  = Tool{Kind: ToolPen, Size: ThinPenSize}
	ThickPen = Tool{Kind: ToolPen, Size: ThickPenSize}
)

// DefaultStickers are the glyphs offered when none are configured. All of
// them are covered by the embedded Go Regular font; emoji need a fallback
// font that has them.
var DefaultStickers = []string{"☺", "♥", "♪"}

// NewStickerTool returns a sticker tool stamping glyph. Blank input yields
// no tool.
func NewStickerTool(glyph string, size float64) (Tool, bool) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return Tool{}, false
	}
	if size <= 0 {
		size = StickerSize
	}
	return Tool{Kind: ToolSticker, Size: size, Glyph: glyph}, true
}

func (t Tool) String() string {
	if t.Kind == ToolSticker {
		return fmt.Sprintf("sticker %s", t.Glyph)
	}
	switch t.Size {
	case ThinPenSize:
		return "thin pen"
	case ThickPenSize:
		return "thick pen"
	}
	return fmt.Sprintf("pen %g", t.Size)
}

func clampSize(v float64) float64 {
	if v < MinSize {
		return MinSize
	}
	if v > MaxSize {
		return MaxSize
	}
	return v
}
