// Package export renders a session's committed drawables at a higher
// resolution onto an independent surface and encodes the result.
package export

import (
	"errors"
	"fmt"
	"io"

	"scribble/internal/drawable"
	"scribble/internal/surface"
)

// DefaultScale is the export resolution multiplier.
const DefaultScale = 4

var ErrInvalidScale = errors.New("export scale must be positive")

// Source is what an exporter replays. *session.Session satisfies it.
type Source interface {
	ExportSize(factor float64) (int, int)
	Export(target drawable.Surface, factor float64)
}

// PNG replays src at factor times its live size and writes a PNG.
func PNG(w io.Writer, src Source, factor float64, fonts *surface.Fonts) error {
	width, height, err := size(src, factor)
	if err != nil {
		return err
	}
	r := surface.NewRaster(width, height, fonts)
	src.Export(r, factor)
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PDF replays src onto a single page of factor times its live size.
func PDF(w io.Writer, src Source, factor float64, fonts *surface.Fonts) error {
	width, height, err := size(src, factor)
	if err != nil {
		return err
	}
	p := surface.NewPDF(width, height, fonts)
	p.Clear()
	src.Export(p, factor)
	return p.Output(w)
}

func size(src Source, factor float64) (int, int, error) {
	if factor <= 0 {
		return 0, 0, ErrInvalidScale
	}
	w, h := src.ExportSize(factor)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("export size %dx%d: %w", w, h, ErrInvalidScale)
	}
	return w, h, nil
}
