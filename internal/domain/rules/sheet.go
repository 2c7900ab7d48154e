package rules

import (
	"strconv"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
)

const (
	defaultHeaderName = "New Character"
	defaultHomeName   = "Adventurer"
)

// Sheet is everything the presentation layer shows that is computed rather than
// entered. Rebuild it after every mutation; it is never stored.
type Sheet struct {
	Modifiers        map[character.Ability]string
	Initiative       string
	ProficiencyBonus string
	HeaderName       string
	HomeName         string
	LevelBadge       string
}

// Derive computes the sheet for r
func Derive(r *character.Record) Sheet {
	mods := make(map[character.Ability]string, len(character.Abilities))
	for _, a := range character.Abilities {
		mods[a] = FormatSigned(Modifier(r.Stats.Get(a)))
	}

	sheet := Sheet{
		Modifiers:        mods,
		Initiative:       Initiative(r.Stats.Dexterity),
		ProficiencyBonus: FormatSigned(ProficiencyBonus(r.Level)),
		HeaderName:       defaultHeaderName,
		HomeName:         defaultHomeName,
		LevelBadge:       "Lv." + strconv.Itoa(r.Level),
	}
	if r.Name != "" {
		sheet.HeaderName = r.Name
		sheet.HomeName = r.Name
	}

	return sheet
}
