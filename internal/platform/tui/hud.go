package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	hudTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	hudMoneyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// HUD holds the two status fields of the running minigame.
// It implements session.HUD.
type HUD struct {
	LeftLabel  string
	LeftValue  string
	RightLabel string
	RightValue string
}

// SetHUD replaces all fields.
func (h *HUD) SetHUD(leftLabel, leftValue, rightLabel, rightValue string) {
	h.LeftLabel = leftLabel
	h.LeftValue = leftValue
	h.RightLabel = rightLabel
	h.RightValue = rightValue
}

// Render draws the status line: title, countdown, score and wallet balance.
func (h *HUD) Render(width int, title string, balance int) string {
	left := hudTitleStyle.Render(title)
	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		hudLabelStyle.Render(h.LeftLabel+" "), hudValueStyle.Render(h.LeftValue),
		"   ",
		hudLabelStyle.Render(h.RightLabel+" "), hudValueStyle.Render(h.RightValue),
		"   ",
		hudMoneyStyle.Render(fmt.Sprintf("$%d", balance)),
	)

	gap := width - lipgloss.Width(left) - lipgloss.Width(fields)
	if gap < 1 {
		return left + " " + fields
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + fields
}
