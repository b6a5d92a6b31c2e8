package surface

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"scribble/internal/drawable"
)

const (
	pdfFontFamily   = "scribble"
	pdfCoreFallback = "Helvetica"
)

// PDF is a drawable.Surface writing vector paths onto a single page whose
// size in points equals the surface size in pixels.
type PDF struct {
	pdf           *gofpdf.Fpdf
	fonts         *Fonts
	families      []string
	width, height int
	fontSize      float64
	translate     func(string) string
}

var _ drawable.Surface = (*PDF)(nil)

func NewPDF(width, height int, fonts *Fonts) *PDF {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	s := &PDF{pdf: p, fonts: fonts, width: width, height: height, fontSize: 12}
	for i := 0; i < fonts.Len(); i++ {
		family := fmt.Sprintf("%s%d", pdfFontFamily, i)
		p.AddUTF8FontFromBytes(family, "", fonts.TTFAt(i))
		if !p.Ok() {
			p.ClearError()
			family = ""
		}
		s.families = append(s.families, family)
	}
	if s.families[0] == "" {
		// glyphs outside cp1252 are lost with the core font
		s.families[0] = pdfCoreFallback
		s.translate = p.UnicodeTranslatorFromDescriptor("")
	}
	p.AddPage()
	p.SetFont(s.families[0], "", s.fontSize)
	return s
}

func (s *PDF) Size() (int, int) {
	return s.width, s.height
}

// Clear paints the page with the background colour; a PDF page cannot be
// erased.
func (s *PDF) Clear() {
	r, g, b := rgb(Background)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Rect(0, 0, float64(s.width), float64(s.height), "F")
}

func (s *PDF) SetColor(c color.Color) {
	r, g, b := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetTextColor(r, g, b)
}

func (s *PDF) SetLineWidth(w float64) {
	s.pdf.SetLineWidth(w)
}

func (s *PDF) SetFontSize(size float64) {
	if size <= 0 {
		return
	}
	s.fontSize = size
	s.pdf.SetFontSize(size)
}

func (s *PDF) MoveTo(x, y float64) {
	s.pdf.MoveTo(x, y)
}

func (s *PDF) LineTo(x, y float64) {
	s.pdf.LineTo(x, y)
}

func (s *PDF) Stroke() {
	s.pdf.DrawPath("D")
}

func (s *PDF) StrokeCircle(x, y, radius float64) {
	s.pdf.Circle(x, y, radius, "D")
}

// FillTextCentered places the baseline so that the em box is vertically
// centred on y, switching to fallback fonts for runes the primary lacks.
func (s *PDF) FillTextCentered(text string, x, y float64) {
	if s.translate != nil {
		text = s.translate(text)
		s.pdf.Text(x-s.pdf.GetStringWidth(text)/2, y+s.fontSize*0.35, text)
		return
	}

	runs := s.fonts.Runs(text)
	widths := make([]float64, len(runs))
	total := 0.0
	for i, run := range runs {
		s.pdf.SetFont(s.family(run.Font), "", s.fontSize)
		widths[i] = s.pdf.GetStringWidth(run.Text)
		total += widths[i]
	}

	pen := x - total/2
	for i, run := range runs {
		s.pdf.SetFont(s.family(run.Font), "", s.fontSize)
		s.pdf.Text(pen, y+s.fontSize*0.35, run.Text)
		pen += widths[i]
	}
	s.pdf.SetFont(s.families[0], "", s.fontSize)
}

func (s *PDF) family(i int) string {
	if i < len(s.families) && s.families[i] != "" {
		return s.families[i]
	}
	return s.families[0]
}

func (s *PDF) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
