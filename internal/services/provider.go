package services

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/store"
	"github.com/KirkDiggler/dnd-tracker/internal/services/tracker"
)

// Provider holds all service instances
type Provider struct {
	Tracker tracker.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Store      store.Store        // Defaults to an in-memory store
	StorageKey string             // Defaults to characters.DefaultKey
	Catalog    tracker.Catalog    // Defaults to the embedded weapon table
	Notifier   tracker.Notifier   // Defaults to logging notifications
	Logger     logrus.FieldLogger // Defaults to the standard logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	st := cfg.Store
	if st == nil {
		st = store.NewInMemory()
	}

	weapons := cfg.Catalog
	if weapons == nil {
		weapons = catalog.Default()
	}

	repo := characters.NewRepository(&characters.RepoConfig{
		Store:  st,
		Key:    cfg.StorageKey,
		Logger: cfg.Logger,
	})

	return &Provider{
		Tracker: tracker.NewService(&tracker.ServiceConfig{
			Repository: repo,
			Catalog:    weapons,
			Notifier:   cfg.Notifier,
			Logger:     cfg.Logger,
		}),
	}
}
