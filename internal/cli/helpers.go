package cli

import (
	"fmt"

	"github.com/sadopc/pomo/internal/config"
	"github.com/sadopc/pomo/internal/store"
)

func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.Path()
}

// openStore opens the database named by cfg and seeds the timer defaults
// from the config on first run.
func openStore(cfg config.Config) (*store.Store, error) {
	s, err := store.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	if err := s.SeedDurations(cfg.Durations()); err != nil {
		s.Close()
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	return s, nil
}
