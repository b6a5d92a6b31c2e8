// Package preview shows a raster surface inside a terminal. Each cell
// carries two vertically stacked pixels drawn with an upper half block, the
// top pixel as foreground and the bottom pixel as background.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"scribble/internal/drawable"
)

const halfBlock = "▀"

// Layout maps a surface onto a block of terminal cells, preserving the
// surface aspect ratio.
type Layout struct {
	Cols, Rows         int
	SurfaceW, SurfaceH int
}

// Fit returns the largest layout for a surface that fits in cols x rows
// cells.
func Fit(cols, rows, surfaceW, surfaceH int) Layout {
	l := Layout{SurfaceW: surfaceW, SurfaceH: surfaceH}
	if cols <= 0 || rows <= 0 || surfaceW <= 0 || surfaceH <= 0 {
		return l
	}
	scale := min(float64(cols)/float64(surfaceW), float64(rows*2)/float64(surfaceH))
	l.Cols = max(1, int(float64(surfaceW)*scale))
	l.Rows = max(1, int(float64(surfaceH)*scale)/2)
	return l
}

func (l Layout) Empty() bool {
	return l.Cols == 0 || l.Rows == 0
}

// Contains reports whether the cell lies on the canvas.
func (l Layout) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < l.Cols && row < l.Rows
}

// ToSurface maps the centre of a cell to surface coordinates. Cells off
// the canvas are clamped to its edge and reported with ok false.
func (l Layout) ToSurface(col, row int) (p drawable.Point, ok bool) {
	if l.Empty() {
		return drawable.Point{}, false
	}
	ok = l.Contains(col, row)
	col = min(max(col, 0), l.Cols-1)
	row = min(max(row, 0), l.Rows-1)
	return drawable.Point{
		X: (float64(col) + 0.5) * float64(l.SurfaceW) / float64(l.Cols),
		Y: (float64(row) + 0.5) * float64(l.SurfaceH) / float64(l.Rows),
	}, ok
}

// maxStyles bounds the style cache. Anti-aliased edges produce many
// distinct colour pairs.
const maxStyles = 4096

// Renderer turns raster frames into terminal text, reusing styles across
// frames.
type Renderer struct {
	styles    map[[2]color.RGBA]lipgloss.Style
	maxStyles int
	buf       *image.RGBA
}

func NewRenderer() *Renderer {
	return &Renderer{
		styles:    make(map[[2]color.RGBA]lipgloss.Style),
		maxStyles: maxStyles,
	}
}

// Render downsamples img to the layout and returns one line per cell row.
func (r *Renderer) Render(img image.Image, l Layout) string {
	if l.Empty() {
		return ""
	}
	bounds := image.Rect(0, 0, l.Cols, l.Rows*2)
	if r.buf == nil || r.buf.Bounds() != bounds {
		r.buf = image.NewRGBA(bounds)
		clear(r.styles)
	}
	xdraw.BiLinear.Scale(r.buf, bounds, img, img.Bounds(), xdraw.Src, nil)

	var b strings.Builder
	for row := 0; row < l.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		run := 0
		var prev [2]color.RGBA
		for col := 0; col < l.Cols; col++ {
			pair := [2]color.RGBA{r.buf.RGBAAt(col, row*2), r.buf.RGBAAt(col, row*2+1)}
			if run > 0 && pair != prev {
				b.WriteString(r.style(prev).Render(strings.Repeat(halfBlock, run)))
				run = 0
			}
			prev = pair
			run++
		}
		if run > 0 {
			b.WriteString(r.style(prev).Render(strings.Repeat(halfBlock, run)))
		}
	}
	return b.String()
}

func (r *Renderer) style(pair [2]color.RGBA) lipgloss.Style {
	if s, ok := r.styles[pair]; ok {
		return s
	}
	if len(r.styles) >= r.maxStyles {
		clear(r.styles)
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(pair[0]))).
		Background(lipgloss.Color(hex(pair[1])))
	r.styles[pair] = s
	return s
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
