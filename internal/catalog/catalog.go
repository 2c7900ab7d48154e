// Package catalog is the static weapon reference table. It is parsed once from an
// embedded YAML file and never mutated afterwards.
package catalog

import (
	_ "embed"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

//go:embed weapons.yaml
var embeddedWeapons []byte

// Entry is one row of the weapon table file
type Entry struct {
	Name                  string `yaml:"name"`
	equipment.WeaponStats `yaml:",inline"`
}

// Table is the on-disk layout of weapons.yaml
type Table struct {
	Weapons []Entry `yaml:"weapons"`
}

// Catalog maps weapon names to stat blocks
type Catalog struct {
	weapons map[string]equipment.WeaponStats
	names   []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded table.
// The embedded table is checked by tests, so a parse failure here is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(embeddedWeapons)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New parses a YAML weapon table
func New(data []byte) (*Catalog, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse weapon table")
	}

	c := &Catalog{
		weapons: make(map[string]equipment.WeaponStats, len(table.Weapons)),
		names:   make([]string, 0, len(table.Weapons)),
	}
	for _, entry := range table.Weapons {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, dnderr.InvalidArgument("weapon table entry has no name")
		}
		if _, exists := c.weapons[name]; exists {
			return nil, dnderr.InvalidArgumentf("weapon %q listed twice", name).
				WithMeta("weapon", name)
		}
		c.weapons[name] = entry.WeaponStats.Clone()
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)

	return c, nil
}

// Get returns a copy of the stat block for name
func (c *Catalog) Get(name string) (equipment.WeaponStats, bool) {
	stats, ok := c.weapons[name]
	if !ok {
		return equipment.WeaponStats{}, false
	}
	return stats.Clone(), true
}

// Names returns every weapon name, sorted
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len is the number of weapons in the table
func (c *Catalog) Len() int {
	return len(c.names)
}

// Encode renders entries as a weapon table, sorted by name
func Encode(entries []Entry) ([]byte, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	data, err := yaml.Marshal(Table{Weapons: sorted})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to encode weapon table")
	}
	return data, nil
}
