package character

import (
	"slices"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/equipment"
)

const (
	DefaultLevel      = 1
	DefaultScore      = 10
	DefaultHitPoints  = 10
	DefaultArmorClass = 10
	DefaultSpeed      = 30
)

// HitPoints are tracked as entered. Current is never checked against Max.
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Currency amounts are never negative
type Currency struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Copper int `json:"copper"`
}

// InventoryItem names are unique within an inventory
type InventoryItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Weapon is a catalog entry copied onto the character
type Weapon struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	equipment.WeaponStats
}

type Location struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// Record is the character sheet. A process holds one Record per profile and
// persists it after every mutation.
type Record struct {
	ID         string
	Name       string
	ClassLevel string
	Race       string
	Level      int
	Stats      Stats
	HP         HitPoints
	ArmorClass int
	Speed      int
	Currency   Currency
	Inventory  []InventoryItem
	Weapons    []Weapon
	Locations  []Location

	// lastID is the most recently issued entry id
	lastID int64
}

// New returns a record holding the first-run defaults
func New(id string) *Record {
	return &Record{
		ID:         id,
		Level:      DefaultLevel,
		Stats:      DefaultStats(),
		HP:         HitPoints{Current: DefaultHitPoints, Max: DefaultHitPoints},
		ArmorClass: DefaultArmorClass,
		Speed:      DefaultSpeed,
		Inventory:  []InventoryItem{},
		Weapons:    []Weapon{},
		Locations:  []Location{},
	}
}

// LastID is the most recently issued entry id
func (r *Record) LastID() int64 {
	return r.lastID
}

// ReseedIDs moves the id counter past floor and past every id already in the
// record, so entries restored from storage never collide with new ones.
func (r *Record) ReseedIDs(floor int64) {
	highest := max(r.lastID, floor)
	for _, item := range r.Inventory {
		highest = max(highest, item.ID)
	}
	for _, weapon := range r.Weapons {
		highest = max(highest, weapon.ID)
	}
	for _, loc := range r.Locations {
		highest = max(highest, loc.ID)
	}
	r.lastID = highest
}

func (r *Record) nextID() int64 {
	r.lastID++
	return r.lastID
}

// Clone returns a deep copy
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	clone := *r
	clone.Inventory = slices.Clone(r.Inventory)
	clone.Locations = slices.Clone(r.Locations)
	clone.Weapons = make([]Weapon, len(r.Weapons))
	for i, w := range r.Weapons {
		w.WeaponStats = w.WeaponStats.Clone()
		clone.Weapons[i] = w
	}
	if clone.Inventory == nil {
		clone.Inventory = []InventoryItem{}
	}
	if clone.Locations == nil {
		clone.Locations = []Location{}
	}

	return &clone
}
