package character

import (
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

// Field is the path of a scalar field on the sheet, e.g. "hp.max" or "stats.wisdom"
type Field string

const (
	FieldName       Field = "name"
	FieldClassLevel Field = "classLevel"
	FieldRace       Field = "race"
	FieldLevel      Field = "level"
	FieldSpeed      Field = "speed"
	FieldArmorClass Field = "armorClass"
	FieldHPCurrent  Field = "hp.current"
	FieldHPMax      Field = "hp.max"
	FieldGold       Field = "currency.gold"
	FieldSilver     Field = "currency.silver"
	FieldCopper     Field = "currency.copper"

	statsPrefix = "stats."
)

// StatField is the field path of an ability score
func StatField(a Ability) Field {
	return Field(statsPrefix + string(a))
}

// Fields lists every settable path
func Fields() []Field {
	fields := []Field{FieldName, FieldClassLevel, FieldRace, FieldLevel}
	for _, a := range Abilities {
		fields = append(fields, StatField(a))
	}
	return append(fields, FieldHPCurrent, FieldHPMax, FieldArmorClass, FieldSpeed,
		FieldGold, FieldSilver, FieldCopper)
}

// Denomination is a coin type
type Denomination string

const (
	Gold   Denomination = "gold"
	Silver Denomination = "silver"
	Copper Denomination = "copper"
)

// SetField writes value into the field at path. Numeric fields take the leading
// integer of value; input with no leading integer, or a zero, falls back to the
// field default. Only an unknown path is an error.
func (r *Record) SetField(path Field, value string) (bool, error) {
	switch path {
	case FieldName:
		return setText(&r.Name, value), nil
	case FieldClassLevel:
		return setText(&r.ClassLevel, value), nil
	case FieldRace:
		return setText(&r.Race, value), nil
	case FieldLevel:
		return setInt(&r.Level, intOr(value, DefaultLevel)), nil
	case FieldSpeed:
		return setInt(&r.Speed, intOr(value, DefaultSpeed)), nil
	case FieldArmorClass:
		return setInt(&r.ArmorClass, intOr(value, DefaultArmorClass)), nil
	case FieldHPCurrent:
		return setInt(&r.HP.Current, intOr(value, 0)), nil
	case FieldHPMax:
		return setInt(&r.HP.Max, intOr(value, 1)), nil
	case FieldGold:
		return setInt(&r.Currency.Gold, max(0, intOr(value, 0))), nil
	case FieldSilver:
		return setInt(&r.Currency.Silver, max(0, intOr(value, 0))), nil
	case FieldCopper:
		return setInt(&r.Currency.Copper, max(0, intOr(value, 0))), nil
	}

	if ability, ok := strings.CutPrefix(string(path), statsPrefix); ok && Ability(ability).Valid() {
		a := Ability(ability)
		before := r.Stats.Get(a)
		score := intOr(value, DefaultScore)
		r.Stats.Set(a, score)
		return before != score, nil
	}

	return false, dnderr.InvalidArgumentf("unknown field %q", path).
		WithMeta("field", string(path))
}

// AdjustCurrency adds delta coins of d, never going below zero
func (r *Record) AdjustCurrency(d Denomination, delta int) bool {
	var coins *int
	switch d {
	case Gold:
		coins = &r.Currency.Gold
	case Silver:
		coins = &r.Currency.Silver
	case Copper:
		coins = &r.Currency.Copper
	default:
		return false
	}

	return setInt(coins, max(0, *coins+delta))
}

// ParseLeadingInt reads an optional sign and the digits that follow, after any
// leading whitespace. "12abc" is 12 and "3.9" is 3; "abc" is not a number.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseQuantity reads a quantity, using 1 for anything that is not a positive integer
func ParseQuantity(s string) int {
	n, ok := ParseLeadingInt(s)
	if !ok || n < 1 {
		return 1
	}
	return n
}

func intOr(value string, fallback int) int {
	n, ok := ParseLeadingInt(value)
	if !ok || n == 0 {
		return fallback
	}
	return n
}

func setText(dst *string, value string) bool {
	if *dst == value {
		return false
	}
	*dst = value
	return true
}

func setInt(dst *int, value int) bool {
	if *dst == value {
		return false
	}
	*dst = value
	return true
}
