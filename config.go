package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"scribble/internal/export"
	"scribble/internal/session"
)

type Config struct {
	SaveDirectory string   `toml:"save_directory"`
	Confirmations bool     `toml:"confirmations"`
	Width         int      `toml:"width"`
	Height        int      `toml:"height"`
	ExportScale   float64  `toml:"export_scale"`
	Font          string   `toml:"font"`
	FallbackFonts []string `toml:"fallback_fonts"`
	Stickers      []string `toml:"stickers"`
	StickerSize   float64  `toml:"sticker_size"`
	MinDistance   float64  `toml:"min_distance"`
	LogFile       string   `toml:"log_file"`
	LogLevel      string   `toml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Confirmations: true,
		Width:         256,
		Height:        256,
		ExportScale:   export.DefaultScale,
		Stickers:      append([]string(nil), session.DefaultStickers...),
		StickerSize:   session.StickerSize,
		LogLevel:      "info",
	}
}

// loadConfig reads ~/.scribblerc. The defaults are returned alongside any
// error so the program can still start.
func loadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFile(filepath.Join(homeDir, rcFile))
}

func loadConfigFile(path string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return defaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	def := defaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ExportScale <= 0 {
		c.ExportScale = def.ExportScale
	}
	if c.StickerSize <= 0 {
		c.StickerSize = def.StickerSize
	}
	if c.MinDistance < 0 {
		c.MinDistance = 0
	}
	stickers := c.Stickers[:0]
	for _, s := range c.Stickers {
		if s = strings.TrimSpace(s); s != "" {
			stickers = append(stickers, s)
		}
	}
	c.Stickers = stickers
	if len(c.Stickers) == 0 {
		c.Stickers = def.Stickers
	}
	c.SaveDirectory = expandPath(c.SaveDirectory)
	c.Font = expandPath(c.Font)
	fallbacks := c.FallbackFonts[:0]
	for _, f := range c.FallbackFonts {
		if f = strings.TrimSpace(f); f != "" {
			fallbacks = append(fallbacks, expandPath(f))
		}
	}
	c.FallbackFonts = fallbacks
	c.LogFile = expandPath(c.LogFile)
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
