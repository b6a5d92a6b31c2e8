package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"scribble/internal/export"
)

var errNothingToExport = errors.New("nothing to export")

// export writes the drawing at the configured scale and reports the result
// in the status line.
func (m *model) export(format ExportFormat) {
	path, err := m.exportTo(format)
	if err != nil {
		m.successMessage = ""
		m.errorMessage = err.Error()
		m.logger.Warn("export failed", "format", format.Ext(), "err", err)
		return
	}
	m.errorMessage = ""
	m.successMessage = "exported " + path
	m.logger.Info("exported", "path", path, "scale", m.config.ExportScale)
}

func (m *model) exportTo(format ExportFormat) (path string, err error) {
	if m.session.History().Len() == 0 {
		return "", errNothingToExport
	}
	name := fmt.Sprintf("scribble-%s.%s", uuid.NewString()[:8], format.Ext())
	path = m.config.GetSavePath(name)

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	switch format {
	case ExportPDF:
		err = export.PDF(file, m.session, m.config.ExportScale, m.fonts)
	default:
		err = export.PNG(file, m.session, m.config.ExportScale, m.fonts)
	}
	if err != nil {
		return "", fmt.Errorf("export %s: %w", format.Ext(), err)
	}
	return path, nil
}
