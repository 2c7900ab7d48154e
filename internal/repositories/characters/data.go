package characters

import (
	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
)

// CharacterData is the serialized form of a record. Key names follow the layout
// the browser tracker wrote, so old saves decode without renaming.
type CharacterData struct {
	SchemaVersion int                       `json:"schemaVersion"`
	ID            string                    `json:"id"`
	Name          string                    `json:"characterName"`
	ClassLevel    string                    `json:"classLevel"`
	Race          string                    `json:"race"`
	Level         int                       `json:"level"`
	Stats         character.Stats           `json:"stats"`
	HP            character.HitPoints       `json:"hp"`
	ArmorClass    int                       `json:"armorClass"`
	Speed         int                       `json:"speed"`
	Currency      character.Currency        `json:"currency"`
	Inventory     []character.InventoryItem `json:"inventory"`
	Weapons       []character.Weapon        `json:"weapons"`
	Locations     []character.Location      `json:"locations"`
	LastID        int64                     `json:"lastId,omitempty"`
}

// toCharacterData converts a record to the data struct for storage
func toCharacterData(r *character.Record) *CharacterData {
	return &CharacterData{
		SchemaVersion: SchemaVersion,
		ID:            r.ID,
		Name:          r.Name,
		ClassLevel:    r.ClassLevel,
		Race:          r.Race,
		Level:         r.Level,
		Stats:         r.Stats,
		HP:            r.HP,
		ArmorClass:    r.ArmorClass,
		Speed:         r.Speed,
		Currency:      r.Currency,
		Inventory:     nonNil(r.Inventory),
		Weapons:       nonNil(r.Weapons),
		Locations:     nonNil(r.Locations),
		LastID:        r.LastID(),
	}
}

// fromCharacterData converts a data struct back to a record
func fromCharacterData(data *CharacterData) *character.Record {
	r := &character.Record{
		ID:         data.ID,
		Name:       data.Name,
		ClassLevel: data.ClassLevel,
		Race:       data.Race,
		Level:      data.Level,
		Stats:      data.Stats,
		HP:         data.HP,
		ArmorClass: data.ArmorClass,
		Speed:      data.Speed,
		Currency: character.Currency{
			Gold:   max(0, data.Currency.Gold),
			Silver: max(0, data.Currency.Silver),
			Copper: max(0, data.Currency.Copper),
		},
		Inventory: nonNil(data.Inventory),
		Weapons:   nonNil(data.Weapons),
		Locations: nonNil(data.Locations),
	}
	for i := range r.Weapons {
		r.Weapons[i].WeaponStats = r.Weapons[i].WeaponStats.Clone()
	}
	r.ReseedIDs(data.LastID)

	return r
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
