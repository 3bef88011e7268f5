package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pet-arcade/internal/registry"
	"github.com/vovakirdan/pet-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores        = 100 // Max results to load per minigame
	statsPanelWidth  = 24
	minWidthForStats = 84 // Minimum width to show the totals panel
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

var boardBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var boardActiveTab = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMode, k.NextMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.PrevMode, k.NextMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right/tab", "next game")),
		PrevMode: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best sessions of each minigame and its totals.
type ScoreboardModel struct {
	games     []registry.GameInfo
	cursor    int
	store     *storage.Store // Nil shows an empty board
	scores    []storage.ResultEntry
	stats     map[string]*storage.ModeStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the board of the first minigame.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	if store != nil {
		m.stats, m.loadErr = store.AllModeStats()
	}
	m.table = newBoardTable(m.columns(), height)
	m.load()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

func (m ScoreboardModel) columns() []table.Column {
	label := "Score"
	if len(m.games) > 0 {
		label = m.games[m.cursor].ScoreLabel
	}
	player := 12
	if spare := m.width - 60; spare > 0 && !m.showStats() {
		player += min(spare, 12)
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: player},
		{Title: label, Width: 7},
		{Title: "Reward", Width: 7},
		{Title: "Date", Width: 13},
	}
}

// newBoardTable builds a focused table with the arcade's styles.
func newBoardTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the results of the selected minigame into the table.
func (m *ScoreboardModel) load() {
	m.scores = nil
	if m.store != nil && len(m.games) > 0 && m.loadErr == nil {
		m.scores, m.loadErr = m.store.TopScores(m.games[m.cursor].Mode.String(), maxScores)
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Owner,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("$%d", s.Reward),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextMode):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newBoardTable(m.columns(), m.height)
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	board := boardBoxStyle.Render(m.renderBoard())
	if m.showStats() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", boardBoxStyle.Render(m.renderStats()))
	}
	b.WriteString(board)

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		line = fmt.Sprintf("< %s >", m.games[m.cursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderBoard() string {
	switch {
	case m.loadErr != nil:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(2, 4).
			Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardMutedStyle.Italic(true).Padding(2, 4).
			Render("No sessions recorded yet.\nPlay a minigame to set a high score!")
	}
	return m.table.View()
}

// renderStats summarises every session of the selected minigame.
func (m ScoreboardModel) renderStats() string {
	var st storage.ModeStats
	if len(m.games) > 0 {
		if s, ok := m.stats[m.games[m.cursor].Mode.String()]; ok {
			st = *s
		}
	}

	row := func(label, value string) string {
		return fmt.Sprintf("%-10s %*s", label, statsPanelWidth-15, value)
	}
	lines := []string{
		boardTitleStyle.Render("Totals"),
		boardMutedStyle.Render(strings.Repeat("─", statsPanelWidth-4)),
		row("Sessions", fmt.Sprintf("%d", st.Sessions)),
		row("Best", fmt.Sprintf("%d", st.HighScore)),
		row("Average", fmt.Sprintf("%.1f", st.AvgScore)),
		row("Earned", fmt.Sprintf("$%d", st.TotalReward)),
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, row("Last", st.LastPlayed.Format("Jan 02")))
	}
	return lipgloss.NewStyle().Width(statsPanelWidth - 4).Render(strings.Join(lines, "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
