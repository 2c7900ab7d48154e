// Package rules holds the derived-value formulas shown on the character sheet.
// Nothing here is persisted; values are recomputed from the record on demand.
package rules

import "strconv"

// Modifier returns the ability modifier for score, floor((score-10)/2).
func Modifier(score int) int {
	delta := score - 10
	mod := delta / 2
	// Go truncates toward zero
	if delta < 0 && delta%2 != 0 {
		mod--
	}
	return mod
}

// ProficiencyBonus returns the level-tiered bonus. Levels below 1 use the first tier.
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	if level > 17 {
		level = 17
	}
	return 2 + ((level - 1) / 4)
}

// FormatSigned renders n with a leading "+" for zero and positive values.
func FormatSigned(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Initiative is the dexterity modifier as displayed.
func Initiative(dexterity int) string {
	return FormatSigned(Modifier(dexterity))
}
