package main

import (
	"log/slog"

	"github.com/aretw0/menutree"
	"github.com/aretw0/menutree/internal/config"
	"github.com/aretw0/menutree/pkg/export"
)

// exportOutline replays the outline at path on a fresh menu and exports it.
// Outline text is held to the same input limits as the transports.
func exportOutline(path string, cfg *config.Config, logger *slog.Logger) (*export.Document, error) {
	m := menutree.New(
		menutree.WithLogger(logger),
		menutree.WithInputLimit(cfg.Input.MaxSize),
	)
	if err := m.Load(path); err != nil {
		return nil, err
	}
	return m.Export()
}
