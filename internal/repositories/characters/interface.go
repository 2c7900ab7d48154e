package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
)

// DefaultKey is the store key the sheet is saved under
const DefaultKey = "dndTrackerData"

// Repository persists the one character record of a profile
type Repository interface {
	// Load returns the saved record, or a fresh default record when nothing is
	// saved or the saved data cannot be decoded
	Load(ctx context.Context) (*character.Record, error)

	// Save writes the whole record
	Save(ctx context.Context, record *character.Record) error

	// Clear removes the saved record
	Clear(ctx context.Context) error
}
