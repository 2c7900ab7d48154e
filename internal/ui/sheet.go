package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-tracker/internal/domain/rules"
)

// RenderSheet draws the whole character sheet
func RenderSheet(rec *character.Record, sheet rules.Sheet) string {
	sections := []string{
		renderHeader(rec, sheet),
		renderAbilities(rec, sheet),
		renderCombat(rec, sheet),
		RenderCurrency(rec.Currency),
		RenderInventory(rec.Inventory),
		RenderWeapons(rec.Weapons),
		RenderLocations(rec.Locations),
	}
	return strings.Join(sections, "\n\n")
}

// RenderHome is the short greeting shown after a change
func RenderHome(sheet rules.Sheet) string {
	return fmt.Sprintf("%s %s", Title.Render("Welcome back, "+sheet.HomeName), Badge.Render(sheet.LevelBadge))
}

func renderHeader(rec *character.Record, sheet rules.Sheet) string {
	lines := []string{
		Heading(IconDice, sheet.HeaderName) + " " + Badge.Render(sheet.LevelBadge),
	}
	if rec.ClassLevel != "" || rec.Race != "" {
		lines = append(lines, Muted.Render(strings.TrimSpace(rec.Race+" "+rec.ClassLevel)))
	}
	return strings.Join(lines, "\n")
}

func renderAbilities(rec *character.Record, sheet rules.Sheet) string {
	cells := make([]string, 0, len(character.Abilities))
	for _, a := range character.Abilities {
		cell := lipgloss.JoinVertical(lipgloss.Center,
			Key.Render(strings.ToUpper(a.Short())),
			fmt.Sprintf("%d", rec.Stats.Get(a)),
			Muted.Render(sheet.Modifiers[a]),
		)
		cells = append(cells, Panel.Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderCombat(rec *character.Record, sheet rules.Sheet) string {
	return strings.Join([]string{
		H2.Render(IconShield + " Combat"),
		LabelValue("HP", fmt.Sprintf("%d/%d", rec.HP.Current, rec.HP.Max)),
		LabelValue("AC", rec.ArmorClass),
		LabelValue("Speed", fmt.Sprintf("%d ft.", rec.Speed)),
		LabelValue("Initiative", sheet.Initiative),
		LabelValue("Proficiency", sheet.ProficiencyBonus),
	}, "\n")
}

func RenderCurrency(c character.Currency) string {
	return fmt.Sprintf("%s\n%s  %s  %s",
		H2.Render(IconCoin+" Currency"),
		Gold.Render(fmt.Sprintf("%d gp", c.Gold)),
		Silver.Render(fmt.Sprintf("%d sp", c.Silver)),
		Copper.Render(fmt.Sprintf("%d cp", c.Copper)),
	)
}

func RenderInventory(items []character.InventoryItem) string {
	lines := []string{H2.Render(IconPack + " Inventory")}
	if len(items) == 0 {
		return strings.Join(append(lines, Muted.Render("(empty)")), "\n")
	}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s %s x%d", idTag(item.ID), item.Name, item.Quantity))
	}
	return strings.Join(lines, "\n")
}

func RenderWeapons(weapons []character.Weapon) string {
	lines := []string{H2.Render(IconSword + " Weapons")}
	if len(weapons) == 0 {
		return strings.Join(append(lines, Muted.Render("(none)")), "\n")
	}
	for _, w := range weapons {
		line := fmt.Sprintf("%s %s %s", idTag(w.ID), w.Name, Key.Render(w.DamageSummary()))
		// Ranged or thrown weapons get a bow marker
		if w.HasProperty("ammunition") || w.HasProperty("thrown") {
			line += " " + IconBow
		}
		if len(w.Properties) > 0 {
			line += " " + Muted.Render(strings.Join(w.Properties, ", "))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func RenderLocations(locations []character.Location) string {
	lines := []string{H2.Render(IconMap + " Locations")}
	if len(locations) == 0 {
		return strings.Join(append(lines, Muted.Render("(none)")), "\n")
	}
	for _, loc := range locations {
		line := fmt.Sprintf("%s %s", idTag(loc.ID), loc.Name)
		if loc.Notes != "" {
			line += ": " + Muted.Render(loc.Notes)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// WeaponLister is what RenderWeaponCatalog needs from the catalog
type WeaponLister interface {
	character.WeaponLookup
	Names() []string
}

// RenderWeaponCatalog lists every weapon that can be added
func RenderWeaponCatalog(c WeaponLister) string {
	lines := []string{H2.Render(IconSword + " Weapon catalog")}
	for _, name := range c.Names() {
		stats, ok := c.Get(name)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			Key.Render(name), stats.DamageSummary(), Muted.Render(stats.Cost), Muted.Render(stats.Weight)))
	}
	return strings.Join(lines, "\n")
}

func idTag(id int64) string {
	return Muted.Render(fmt.Sprintf("#%d", id))
}
