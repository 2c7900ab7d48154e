package character

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/equipment"
)

// WeaponLookup resolves weapon names to catalog stat blocks
type WeaponLookup interface {
	Get(name string) (equipment.WeaponStats, bool)
}

// AddInventoryItem adds quantity of name. An item with the same name (exact,
// case-sensitive, after trimming) absorbs the quantity instead of a new entry
// being created. Quantities below 1 count as 1. A blank name does nothing.
func (r *Record) AddInventoryItem(name string, quantity int) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if quantity < 1 {
		quantity = 1
	}

	for i := range r.Inventory {
		if r.Inventory[i].Name == name {
			r.Inventory[i].Quantity += quantity
			return true
		}
	}

	r.Inventory = append(r.Inventory, InventoryItem{
		ID:       r.nextID(),
		Name:     name,
		Quantity: quantity,
	})
	return true
}

func (r *Record) RemoveInventoryItem(id int64) bool {
	before := len(r.Inventory)
	r.Inventory = slices.DeleteFunc(r.Inventory, func(item InventoryItem) bool {
		return item.ID == id
	})
	return len(r.Inventory) != before
}

// AddWeapon appends a copy of the catalog entry for name. Unknown names do nothing.
// The same weapon may be carried more than once.
func (r *Record) AddWeapon(lookup WeaponLookup, name string) bool {
	stats, ok := lookup.Get(name)
	if !ok {
		return false
	}

	r.Weapons = append(r.Weapons, Weapon{
		ID:          r.nextID(),
		Name:        name,
		WeaponStats: stats.Clone(),
	})
	return true
}

func (r *Record) RemoveWeapon(id int64) bool {
	before := len(r.Weapons)
	r.Weapons = slices.DeleteFunc(r.Weapons, func(w Weapon) bool {
		return w.ID == id
	})
	return len(r.Weapons) != before
}

// AddLocation appends a location with empty notes. A blank name does nothing.
func (r *Record) AddLocation(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	r.Locations = append(r.Locations, Location{
		ID:   r.nextID(),
		Name: name,
	})
	return true
}

func (r *Record) RemoveLocation(id int64) bool {
	before := len(r.Locations)
	r.Locations = slices.DeleteFunc(r.Locations, func(loc Location) bool {
		return loc.ID == id
	})
	return len(r.Locations) != before
}

// SetLocationNotes replaces the notes of the location with id, if present
func (r *Record) SetLocationNotes(id int64, notes string) bool {
	for i := range r.Locations {
		if r.Locations[i].ID != id {
			continue
		}
		if r.Locations[i].Notes == notes {
			return false
		}
		r.Locations[i].Notes = notes
		return true
	}
	return false
}
