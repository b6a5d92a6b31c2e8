package main

import (
	"os/exec"
	"runtime"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanGlyph reduces user or clipboard input to a single-line sticker
// glyph: first non-blank line, control characters dropped, capped at
// maxGlyphRunes.
func cleanGlyph(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		var b strings.Builder
		n := 0
		for _, r := range line {
			if unicode.IsControl(r) {
				continue
			}
			if n == maxGlyphRunes {
				break
			}
			b.WriteRune(r)
			n++
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			return s
		}
	}
	return ""
}
