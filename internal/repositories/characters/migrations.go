package characters

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-tracker/internal/uuid"
)

// SchemaVersion is the layout Save writes. Documents without a schemaVersion
// key are version 0, the layout of the original browser tracker.
const SchemaVersion = 3

type document map[string]any

// migration upgrades a document from version-1 to version
type migration struct {
	version     int
	description string
	apply       func(doc document, ids uuid.Generator)
}

// migrations run in order; each one only runs for documents older than its version
var migrations = []migration{
	{
		version:     1,
		description: "build currency from the legacy flat gold field",
		apply:       migrateLegacyGold,
	},
	{
		version:     2,
		description: "add an empty weapons list",
		apply:       migrateWeapons,
	},
	{
		version:     3,
		description: "assign a profile id and backfill missing fields",
		apply:       migrateProfileDefaults,
	},
}

// migrate upgrades doc in place and returns the version it started at
func migrate(doc document, ids uuid.Generator) (int, error) {
	from, err := documentVersion(doc)
	if err != nil {
		return 0, err
	}

	for _, m := range migrations {
		if from >= m.version {
			continue
		}
		m.apply(doc, ids)
	}
	if from < SchemaVersion {
		doc["schemaVersion"] = SchemaVersion
	}

	return from, nil
}

func documentVersion(doc document) (int, error) {
	raw, ok := doc["schemaVersion"]
	if !ok || raw == nil {
		return 0, nil
	}

	num, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("schemaVersion is %T, not a number", raw)
	}
	version, err := num.Int64()
	if err != nil || version < 0 {
		return 0, fmt.Errorf("schemaVersion %q is not a version", num)
	}

	return int(version), nil
}

func migrateLegacyGold(doc document, _ uuid.Generator) {
	if isPresent(doc, "currency") {
		delete(doc, "gold")
		return
	}

	gold := json.Number("0")
	if legacy, ok := doc["gold"].(json.Number); ok {
		gold = legacy
	}
	doc["currency"] = map[string]any{
		"gold":   gold,
		"silver": 0,
		"copper": 0,
	}
	delete(doc, "gold")
}

func migrateWeapons(doc document, _ uuid.Generator) {
	if !isPresent(doc, "weapons") {
		doc["weapons"] = []any{}
	}
}

func migrateProfileDefaults(doc document, ids uuid.Generator) {
	if id, _ := doc["id"].(string); id == "" {
		doc["id"] = ids.New()
	}

	setDefault(doc, "characterName", "")
	setDefault(doc, "classLevel", "")
	setDefault(doc, "race", "")
	setDefault(doc, "level", character.DefaultLevel)
	setDefault(doc, "armorClass", character.DefaultArmorClass)
	setDefault(doc, "speed", character.DefaultSpeed)
	setDefault(doc, "inventory", []any{})
	setDefault(doc, "locations", []any{})

	stats := nested(doc, "stats")
	for _, a := range character.Abilities {
		setDefault(stats, string(a), character.DefaultScore)
	}

	hp := nested(doc, "hp")
	setDefault(hp, "current", character.DefaultHitPoints)
	setDefault(hp, "max", character.DefaultHitPoints)
}

func isPresent(doc document, key string) bool {
	v, ok := doc[key]
	return ok && v != nil
}

func setDefault(doc document, key string, value any) {
	if !isPresent(doc, key) {
		doc[key] = value
	}
}

// nested returns the object under key, replacing anything that is not an object
func nested(doc document, key string) document {
	if obj, ok := doc[key].(map[string]any); ok {
		return obj
	}
	obj := map[string]any{}
	doc[key] = obj
	return obj
}
