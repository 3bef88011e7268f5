package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pet-arcade/internal/economy"
	"github.com/vovakirdan/pet-arcade/internal/storage"
)

const maxLedgerEntries = 200

// LedgerKeyMap defines the key bindings for the ledger screen.
type LedgerKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LedgerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LedgerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultLedgerKeyMap returns default key bindings.
func DefaultLedgerKeyMap() LedgerKeyMap {
	sb := DefaultScoreboardKeyMap()
	return LedgerKeyMap{Up: sb.Up, Down: sb.Down, Back: sb.Back, Quit: sb.Quit}
}

// LedgerModel lists the reward history of one wallet.
type LedgerModel struct {
	wallet    *economy.Wallet
	entries   []storage.LedgerEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      LedgerKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLedgerModel loads the ledger of wallet's owner from store.
// A nil store shows an empty ledger.
func NewLedgerModel(store *storage.Store, wallet *economy.Wallet, width, height int) LedgerModel {
	m := LedgerModel{
		wallet: wallet,
		help:   help.New(),
		keys:   DefaultLedgerKeyMap(),
		width:  width,
		height: height,
	}
	if store != nil && wallet != nil {
		m.entries, m.loadErr = store.Ledger(wallet.Owner(), maxLedgerEntries)
	}
	m.table = m.createTable()
	return m
}

func (m LedgerModel) createTable() table.Model {
	reasonWidth := max(m.width-4-6-9-15-8, 20)
	t := newBoardTable([]table.Column{
		{Title: "#", Width: 6},
		{Title: "Amount", Width: 9},
		{Title: "Activity", Width: reasonWidth},
		{Title: "Date", Width: 15},
	}, m.height)

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			fmt.Sprintf("+$%d", e.Amount),
			e.Reason,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	t.SetRows(rows)
	return t
}

// Init initializes the ledger model.
func (m LedgerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the ledger.
func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the ledger.
func (m LedgerModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "WALLET"
	if m.wallet != nil {
		title = fmt.Sprintf("WALLET - %s - $%d", m.wallet.Owner(), m.wallet.Balance())
	}
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(boardBoxStyle.Render("Could not load ledger:\n" + m.loadErr.Error()))
	case len(m.entries) == 0:
		b.WriteString(boardBoxStyle.Render(boardMutedStyle.Italic(true).Padding(1, 3).
			Render("No rewards yet.\nFinish a minigame to earn your first coins!")))
	default:
		b.WriteString(boardBoxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LedgerModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LedgerModel) IsQuitting() bool {
	return m.quitting
}
