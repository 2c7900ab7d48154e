package dnd5e

import (
	"fmt"
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	"github.com/KirkDiggler/dnd-tracker/internal/domain/equipment"
)

func weaponToEntry(input *apiEntities.Weapon) catalog.Entry {
	stats := equipment.WeaponStats{
		Damage:     "0",
		Properties: []string{},
	}

	if input.Damage != nil && input.Damage.DamageDice != "" {
		stats.Damage = input.Damage.DamageDice
		if input.Damage.DamageType != nil {
			stats.DamageType = strings.ToLower(input.Damage.DamageType.Name)
		}
	}

	for _, prop := range input.Properties {
		if prop == nil || prop.Name == "" {
			continue
		}
		name := prop.Name
		if strings.EqualFold(prop.Key, "versatile") && input.TwoHandedDamage != nil {
			name = fmt.Sprintf("%s (%s)", name, input.TwoHandedDamage.DamageDice)
		}
		stats.Properties = append(stats.Properties, name)
	}

	if input.Cost != nil {
		stats.Cost = fmt.Sprintf("%v %v", input.Cost.Quantity, input.Cost.Unit)
	}
	stats.Weight = fmt.Sprintf("%v lb.", input.Weight)

	return catalog.Entry{
		Name:        input.Name,
		WeaponStats: stats,
	}
}
