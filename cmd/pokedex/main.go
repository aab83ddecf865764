package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pokedex/internal/catalog"
	"github.com/jask/pokedex/internal/config"
	"github.com/jask/pokedex/internal/logging"
	"github.com/jask/pokedex/internal/service"
	"github.com/jask/pokedex/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	if wrote, err := config.EnsureFile(cfg); err != nil {
		logger.Warn().Err(err).Msg("could not write default config")
	} else if wrote {
		logger.Info().Msg("wrote default config")
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	session := service.NewSession(cat, logger)
	defer session.Close()
	logger.Info().Str("catalog", cfg.Catalog.Path).Msg("session started")

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(session, cfg.UI, logger), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		fmt.Printf("error: %v\n", err)
	}
}
