package preview

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"scribble/internal/drawable"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name             string
		cols, rows, w, h int
		want             Layout
	}{
		{"square in wide terminal", 120, 40, 256, 256, Layout{Cols: 80, Rows: 40, SurfaceW: 256, SurfaceH: 256}},
		{"square in narrow terminal", 40, 40, 256, 256, Layout{Cols: 40, Rows: 20, SurfaceW: 256, SurfaceH: 256}},
		{"wide surface", 100, 50, 400, 100, Layout{Cols: 100, Rows: 12, SurfaceW: 400, SurfaceH: 100}},
		{"no room", 0, 10, 256, 256, Layout{SurfaceW: 256, SurfaceH: 256}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Fit(tc.cols, tc.rows, tc.w, tc.h))
		})
	}
}

func TestToSurface(t *testing.T) {
	l := Layout{Cols: 64, Rows: 32, SurfaceW: 256, SurfaceH: 256}

	p, ok := l.ToSurface(0, 0)
	assert.True(t, ok)
	assert.Equal(t, drawable.Pt(2, 4), p)

	p, ok = l.ToSurface(63, 31)
	assert.True(t, ok)
	assert.Equal(t, drawable.Pt(254, 252), p)

	p, ok = l.ToSurface(70, -3)
	assert.False(t, ok)
	assert.Equal(t, drawable.Pt(254, 4), p)

	_, ok = Layout{}.ToSurface(0, 0)
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	l := Fit(10, 5, 40, 40)
	require.Equal(t, Layout{Cols: 10, Rows: 5, SurfaceW: 40, SurfaceH: 40}, l)

	out := NewRenderer().Render(img, l)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 10, ansi.StringWidth(line))
		assert.Equal(t, strings.Repeat(halfBlock, 10), ansi.Strip(line))
	}

	assert.Empty(t, NewRenderer().Render(img, Layout{}))
}

func TestRendererReusesStyles(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r := NewRenderer()
	r.Render(img, Fit(4, 2, 8, 8))
	n := len(r.styles)
	r.Render(img, Fit(4, 2, 8, 8))
	assert.Equal(t, n, len(r.styles))
	assert.Equal(t, 1, n)
}

func TestRendererStyleCacheBounded(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0, A: 255})
		}
	}
	r := NewRenderer()
	r.maxStyles = 5
	l := Layout{Cols: 16, Rows: 8, SurfaceW: 16, SurfaceH: 16}

	out := r.Render(img, l)
	assert.LessOrEqual(t, len(r.styles), 5)
	assert.Len(t, strings.Split(out, "\n"), 8)
}

func TestRendererLayoutChangeResetsStyles(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, image.Rect(0, 0, 4, 8), image.NewUniform(color.White), image.Point{}, draw.Src)
	r := NewRenderer()
	r.Render(img, Fit(8, 4, 8, 8))
	require.NotEmpty(t, r.styles)

	black := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r.Render(black, Fit(4, 2, 8, 8))
	assert.Len(t, r.styles, 1)
}
