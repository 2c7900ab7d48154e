package equipment

import (
	"slices"
	"strings"
)

// WeaponStats is a catalog stat block for one weapon.
type WeaponStats struct {
	Damage     string   `json:"damage" yaml:"damage"`
	DamageType string   `json:"damageType" yaml:"damage_type"`
	Properties []string `json:"properties" yaml:"properties"`
	Cost       string   `json:"cost" yaml:"cost"`
	Weight     string   `json:"weight" yaml:"weight"`
}

// Clone returns a copy that shares no slices with w
func (w WeaponStats) Clone() WeaponStats {
	w.Properties = slices.Clone(w.Properties)
	if w.Properties == nil {
		w.Properties = []string{}
	}
	return w
}

// HasProperty reports whether the weapon lists prop. Matching ignores case and any
// parenthesised detail, so "thrown" matches "Thrown (range 20/60)".
func (w WeaponStats) HasProperty(prop string) bool {
	for _, p := range w.Properties {
		name, _, _ := strings.Cut(p, "(")
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			return true
		}
	}

	return false
}

// DamageSummary renders damage and type, e.g. "1d8 slashing"
func (w WeaponStats) DamageSummary() string {
	if w.DamageType == "" {
		return w.Damage
	}
	return w.Damage + " " + w.DamageType
}
