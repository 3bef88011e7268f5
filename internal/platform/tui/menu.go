package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/economy"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuInfoStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	menuMoneyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

const menuFooter = "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  L: Ledger  |  Q: Quit"

// menuChoice is what the player picked before leaving the menu.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceGame
	choiceScoreboard
	choiceLedger
	choiceQuit
)

// MenuModel lists the minigames with their countdown and payout.
type MenuModel struct {
	items     []registry.GameInfo
	cfg       config.Config
	wallet    *economy.Wallet
	keyMapper *KeyMapper
	cursor    int
	width     int
	height    int
	choice    menuChoice
}

// NewMenuModel creates a menu showing wallet's balance.
func NewMenuModel(cfg config.Config, wallet *economy.Wallet, width, height int) MenuModel {
	return MenuModel{
		items:     registry.List(),
		cfg:       cfg,
		wallet:    wallet,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		if m.choice == choiceQuit {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *MenuModel) handleKey(msg tea.KeyMsg) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = choiceQuit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.choice = choiceGame
		}
	case MenuActionScoreboard:
		m.choice = choiceScoreboard
	case MenuActionLedger:
		m.choice = choiceLedger
	}
}

// itemLine renders one row: title, countdown and payout.
func (m MenuModel) itemLine(g registry.GameInfo, titleWidth int) string {
	duration := "-"
	if secs := m.cfg.Duration(g.Mode); secs > 0 {
		duration = fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%-*s  %4s  %s x%g", titleWidth, g.Title, duration, g.ScoreLabel, m.cfg.Multiplier(g.Mode))
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	line(menuTitleStyle.Render("  P E T   A R C A D E  "))
	b.WriteString("\n")

	if m.wallet != nil {
		line(fmt.Sprintf("%s's wallet: %s", m.wallet.Owner(), menuMoneyStyle.Render(fmt.Sprintf("$%d", m.wallet.Balance()))))
		b.WriteString("\n")
	}
	line("Pick a minigame to earn coins")
	b.WriteString("\n")

	titleWidth := 0
	for _, g := range m.items {
		titleWidth = max(titleWidth, len(g.Title))
	}
	for i, g := range m.items {
		row := m.itemLine(g, titleWidth)
		if i == m.cursor {
			line(menuSelectedStyle.Render("> " + row))
		} else {
			line("  " + row)
		}
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		line(menuInfoStyle.Render(m.items[m.cursor].Info))
	}

	b.WriteString("\n")
	line(menuFooter)
	return b.String()
}

// Selected returns the chosen mode, or ModeNone if none was chosen.
func (m MenuModel) Selected() core.Mode {
	if m.choice != choiceGame {
		return core.ModeNone
	}
	return m.items[m.cursor].Mode
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.choice == choiceQuit
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.choice == choiceScoreboard
}

// WantsLedger returns true if user requested the wallet ledger.
func (m MenuModel) WantsLedger() bool {
	return m.choice == choiceLedger
}
