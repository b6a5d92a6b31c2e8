package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scribble/internal/logging"
)

func main() {
	config, configErr := loadConfig()

	logger, closer, err := logging.Open(config.LogFile, config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	m, err := initialModel(config, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if configErr != nil {
		logger.Warn("config ignored", "err", configErr)
		m.errorMessage = configErr.Error()
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
