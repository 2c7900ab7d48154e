package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconShield = "🛡️"
	IconHeart  = "❤️"
	IconCoin   = "🪙"
	IconPack   = "🎒"
	IconSword  = "⚔️"
	IconMap    = "🗺️"
	IconDone   = "✅"
	IconError  = "🧨"
	IconDice   = "🎲"
	IconBow    = "🏹"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cSilver  = lipgloss.Color("250")
	cCopper  = lipgloss.Color("166")
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2     = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted  = lipgloss.NewStyle().Foreground(cMuted)
	Key    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good   = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Silver = lipgloss.NewStyle().Bold(true).Foreground(cSilver)
	Copper = lipgloss.NewStyle().Bold(true).Foreground(cCopper)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Badge = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func ErrorText(err error) string {
	return Bad.Render(IconError + " " + err.Error())
}
