// Package surface implements drawable.Surface on top of real rendering
// backends: a gg raster context for the live view and PNG export, and a
// gofpdf page for vector export.
package surface

import (
	"fmt"
	"os"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	font int
	size float64
}

// Fonts is a chain of TrueType fonts parsed once. Text is drawn with the
// first font in the chain that has a glyph for each rune.
type Fonts struct {
	ttfs  [][]byte
	fonts []*truetype.Font
	faces map[faceKey]font.Face
}

// Run is a stretch of text drawn with a single font of the chain.
type Run struct {
	Text string
	Font int
}

// LoadFonts reads the TTF at path, or the embedded Go Regular font when
// path is empty, followed by any fallback TTFs.
func LoadFonts(path string, fallbacks ...string) (*Fonts, error) {
	primary := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		primary = b
	}
	ttfs := [][]byte{primary}
	for _, p := range fallbacks {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read fallback font: %w", err)
		}
		ttfs = append(ttfs, b)
	}
	return ParseFonts(ttfs...)
}

// ParseFonts parses a font chain, primary first.
func ParseFonts(ttfs ...[]byte) (*Fonts, error) {
	if len(ttfs) == 0 {
		return nil, fmt.Errorf("parse font: no fonts")
	}
	f := &Fonts{faces: make(map[faceKey]font.Face)}
	for i, ttf := range ttfs {
		parsed, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %d: %w", i, err)
		}
		f.ttfs = append(f.ttfs, ttf)
		f.fonts = append(f.fonts, parsed)
	}
	return f, nil
}

// DefaultFonts returns the embedded Go Regular font.
func DefaultFonts() *Fonts {
	f, err := ParseFonts(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

// Len is the number of fonts in the chain.
func (f *Fonts) Len() int {
	return len(f.fonts)
}

// Face returns the primary face for size points at 72 DPI, so one point is
// one surface pixel.
func (f *Fonts) Face(size float64) font.Face {
	return f.FaceAt(0, size)
}

// FaceAt returns the face of font i in the chain.
func (f *Fonts) FaceAt(i int, size float64) font.Face {
	key := faceKey{font: i, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(f.fonts[i], &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}

// TTF returns the raw bytes of the primary font.
func (f *Fonts) TTF() []byte {
	return f.ttfs[0]
}

// TTFAt returns the raw bytes of font i in the chain.
func (f *Fonts) TTFAt(i int) []byte {
	return f.ttfs[i]
}

// fontFor returns the first font covering r. Uncovered runes stay with
// the primary font, which draws its missing-glyph box.
func (f *Fonts) fontFor(r rune) (int, bool) {
	for i, ft := range f.fonts {
		if ft.Index(r) != 0 {
			return i, true
		}
	}
	return 0, false
}

// Runs splits s into consecutive runs that share a font.
func (f *Fonts) Runs(s string) []Run {
	var runs []Run
	start, cur := 0, -1
	for i, r := range s {
		idx := cur
		if !combining(r) || cur < 0 {
			idx, _ = f.fontFor(r)
		}
		if idx != cur {
			if cur >= 0 {
				runs = append(runs, Run{Text: s[start:i], Font: cur})
			}
			start, cur = i, idx
		}
	}
	if cur >= 0 {
		runs = append(runs, Run{Text: s[start:], Font: cur})
	}
	return runs
}

// Missing returns the runes of s that no font in the chain can draw.
func (f *Fonts) Missing(s string) []rune {
	var missing []rune
	for _, r := range s {
		if unicode.IsSpace(r) || combining(r) {
			continue
		}
		if _, ok := f.fontFor(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// combining reports runes that modify the previous one (variation
// selectors, joiners) and are never looked up on their own.
func combining(r rune) bool {
	return r == 0x200d || (r >= 0xfe00 && r <= 0xfe0f) || unicode.Is(unicode.Mn, r)
}
