package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
)

// CreateTestRecord builds a filled-in record: a level 3 half-elf rogue with
// some gear, a dagger and one location with notes.
func CreateTestRecord(t *testing.T, id, name string) *character.Record {
	t.Helper()

	rec := character.New(id)
	set := func(path character.Field, value string) {
		_, err := rec.SetField(path, value)
		require.NoError(t, err)
	}
	set(character.FieldName, name)
	set(character.FieldClassLevel, "Rogue 3")
	set(character.FieldRace, "Half-Elf")
	set(character.FieldLevel, "3")
	set(character.StatField(character.Dexterity), "16")
	set(character.StatField(character.Strength), "8")
	set(character.FieldHPMax, "21")
	set(character.FieldHPCurrent, "17")
	set(character.FieldArmorClass, "14")
	set(character.FieldGold, "25")
	set(character.FieldSilver, "4")

	rec.AddInventoryItem("Rope (50 ft)", 1)
	rec.AddInventoryItem("Torch", 5)
	require.True(t, rec.AddWeapon(catalog.Default(), "Dagger"), "dagger missing from catalog")

	require.True(t, rec.AddLocation("Phandalin"))
	rec.SetLocationNotes(rec.Locations[0].ID, "Stonehill Inn, ask for Toblen")

	return rec
}
