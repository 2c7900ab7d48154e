package dnd5e

//go:generate mockgen -destination=mock/mock_source.go -package=mockdnd5e -source=interface.go

import (
	"context"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
)

// Client fetches catalog data from the D&D 5e API
type Client interface {
	// ListWeapons returns every weapon in the API as catalog entries, sorted by name
	ListWeapons(ctx context.Context) ([]catalog.Entry, error)
}

// Source is the part of the upstream API the client reads
type Source interface {
	// CategoryKeys lists the equipment keys in an equipment category
	CategoryKeys(category string) ([]string, error)

	// Equipment fetches one piece of equipment by key
	Equipment(key string) (dnd5e.EquipmentInterface, error)
}
