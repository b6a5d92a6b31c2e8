package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"scribble/internal/drawable"
	"scribble/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r+g+b)/3 < 0x8000
}

func countDark(img image.Image, rect image.Rectangle) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if isDark(img.At(x, y)) {
				n++
			}
		}
	}
	return n
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(32, 16, nil)
	w, h := r.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
	assert.Zero(t, countDark(r.Image(), r.Image().Bounds()))
}

func TestRasterStroke(t *testing.T) {
	r := NewRaster(64, 64, nil)
	s := drawable.NewStroke(4)
	s.AddPoint(8, 32)
	s.AddPoint(56, 32)
	s.Display(r)

	img := r.Image()
	assert.True(t, isDark(img.At(32, 32)))
	assert.False(t, isDark(img.At(32, 5)))

	r.Clear()
	assert.False(t, isDark(r.Image().At(32, 32)))
}

func TestRasterStickerCentered(t *testing.T) {
	r := NewRaster(100, 100, nil)
	s := drawable.NewSticker("W", 40)
	s.AddPoint(50, 50)
	s.Display(r)

	img := r.Image()
	assert.Positive(t, countDark(img, image.Rect(35, 35, 65, 65)))
	assert.Zero(t, countDark(img, image.Rect(0, 0, 100, 20)))
	assert.Zero(t, countDark(img, image.Rect(0, 80, 100, 100)))
}

func TestRasterCursor(t *testing.T) {
	r := NewRaster(64, 64, nil)
	c := drawable.NewCursor(40)
	c.AddPoint(32, 32)
	c.Display(r)

	img := r.Image()
	// outline only: centre stays background
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(img.At(32, 32)))
	assert.NotEqual(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(img.At(52, 32)))
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(20, 10, nil)
	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())
}

func TestFontsFaceCached(t *testing.T) {
	f := DefaultFonts()
	assert.Same(t, f.Face(12), f.Face(12))
	assert.NotEmpty(t, f.TTF())

	_, err := ParseFonts([]byte("not a font"))
	assert.Error(t, err)

	_, err = LoadFonts("/does/not/exist.ttf")
	assert.Error(t, err)
}

func TestPDFOutput(t *testing.T) {
	p := NewPDF(200, 100, nil)
	w, h := p.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	p.Clear()
	s := drawable.NewStroke(2)
	s.AddPoint(10, 10)
	s.AddPoint(190, 90)
	s.Display(p)
	st := drawable.NewSticker("hello", 20)
	st.AddPoint(100, 50)
	st.Display(p)
	c := drawable.NewCursor(10)
	c.AddPoint(20, 20)
	c.Display(p)

	var buf bytes.Buffer
	require.NoError(t, p.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func renderSticker(t *testing.T, glyph string) *image.RGBA {
	t.Helper()
	r := NewRaster(100, 100, nil)
	s := drawable.NewSticker(glyph, session.StickerSize)
	s.AddPoint(50, 50)
	s.Display(r)
	img, ok := r.Image().(*image.RGBA)
	require.True(t, ok)
	return img
}

func TestDefaultStickersDrawable(t *testing.T) {
	f := DefaultFonts()
	for _, glyph := range session.DefaultStickers {
		assert.Empty(t, f.Missing(glyph), "glyph %q", glyph)
		assert.Positive(t, countDark(renderSticker(t, glyph), image.Rect(25, 25, 75, 75)), "glyph %q", glyph)
	}

	a := renderSticker(t, session.DefaultStickers[0])
	b := renderSticker(t, session.DefaultStickers[1])
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestFontsMissing(t *testing.T) {
	f := DefaultFonts()
	assert.Empty(t, f.Missing("hello world"))
	assert.Equal(t, []rune{'😂'}, f.Missing("a😂b"))
	// variation selector rides on the previous rune
	assert.Equal(t, []rune{'⭐'}, f.Missing("⭐️"))
}

func TestFontsRuns(t *testing.T) {
	f := DefaultFonts()
	assert.Equal(t, []Run{{Text: "a😂b", Font: 0}}, f.Runs("a😂b"))
	assert.Empty(t, f.Runs(""))
}

func TestLoadFontsChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	f, err := LoadFonts("", path)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, goregular.TTF, f.TTFAt(1))
	assert.NotSame(t, f.FaceAt(0, 12), f.FaceAt(1, 12))
	assert.Same(t, f.FaceAt(1, 12), f.FaceAt(1, 12))
	// the primary wins when both fonts cover a rune
	assert.Equal(t, []Run{{Text: "W", Font: 0}}, f.Runs("W"))

	_, err = LoadFonts("", filepath.Join(t.TempDir(), "absent.ttf"))
	assert.Error(t, err)

	p := NewPDF(100, 100, f)
	st := drawable.NewSticker("♥ W", 20)
	st.AddPoint(50, 50)
	st.Display(p)
	var buf bytes.Buffer
	require.NoError(t, p.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
