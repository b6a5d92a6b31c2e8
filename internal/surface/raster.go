package surface

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"scribble/internal/drawable"
)

const defaultFontSize = 12

// Background is the colour a cleared raster is filled with.
var Background color.Color = color.White

// Raster is a drawable.Surface backed by a gg context.
type Raster struct {
	dc    *gg.Context
	fonts *Fonts
	face  font.Face
	size  float64
}

var _ drawable.Surface = (*Raster)(nil)

func NewRaster(width, height int, fonts *Fonts) *Raster {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	dc := gg.NewContext(width, height)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	r := &Raster{dc: dc, fonts: fonts}
	r.Clear()
	return r
}

func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *Raster) Clear() {
	r.dc.ClearPath()
	r.dc.SetColor(Background)
	r.dc.Clear()
	r.dc.SetColor(drawable.Ink)
}

func (r *Raster) SetColor(c color.Color) {
	r.dc.SetColor(c)
}

func (r *Raster) SetLineWidth(w float64) {
	r.dc.SetLineWidth(w)
}

func (r *Raster) SetFontSize(size float64) {
	if size <= 0 {
		return
	}
	r.size = size
	r.face = r.fonts.Face(size)
	r.dc.SetFontFace(r.face)
}

func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

func (r *Raster) Stroke() {
	r.dc.Stroke()
}

func (r *Raster) StrokeCircle(x, y, radius float64) {
	r.dc.DrawCircle(x, y, radius)
	r.dc.Stroke()
}

// FillTextCentered centres s horizontally on x and centres the primary
// font's line box (ascent plus descent) vertically on y. Runes the primary
// font lacks are drawn with the first fallback font that has them.
func (r *Raster) FillTextCentered(s string, x, y float64) {
	if r.face == nil {
		r.SetFontSize(defaultFontSize)
	}
	m := r.face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64

	runs := r.fonts.Runs(s)
	widths := make([]float64, len(runs))
	total := 0.0
	for i, run := range runs {
		widths[i] = float64(font.MeasureString(r.fonts.FaceAt(run.Font, r.size), run.Text)) / 64
		total += widths[i]
	}

	pen := x - total/2
	baseline := y + (ascent-descent)/2
	for i, run := range runs {
		r.dc.SetFontFace(r.fonts.FaceAt(run.Font, r.size))
		r.dc.DrawString(run.Text, pen, baseline)
		pen += widths[i]
	}
	r.dc.SetFontFace(r.face)
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
