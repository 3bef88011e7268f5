package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/economy"
	"github.com/vovakirdan/pet-arcade/internal/storage"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Config config.Config
	Store  *storage.Store // Optional; scoreboard and ledger are empty without it
	Wallet *economy.Wallet
	Seed   int64 // 0 = random based on time
	FPS    int
	Width  int
	Height int
	Logger *log.Logger
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScoreboard
	screenLedger
)

// AppModel manages the full arcade flow: menu -> game -> menu, plus the
// scoreboard and wallet ledger screens.
// This is the top-level model for the menu command and SSH sessions.
type AppModel struct {
	opts       AppOptions
	screen     screen
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	ledger     LedgerModel
	quitting   bool
}

// OpenWallet opens the wallet of owner, in memory when store is nil.
func OpenWallet(owner string, store *storage.Store, logger *log.Logger) *economy.Wallet {
	if store == nil {
		return economy.Open(owner, nil, logger)
	}
	return economy.Open(owner, store, logger)
}

// NewAppModel creates an app model showing the menu.
func NewAppModel(opts AppOptions) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Wallet == nil {
		opts.Wallet = OpenWallet("local", opts.Store, opts.Logger)
	}
	return AppModel{
		opts: opts,
		menu: NewMenuModel(opts.Config, opts.Wallet, opts.Width, opts.Height),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenLedger:
		return m.updateLedger(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Width, m.opts.Height)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.WantsLedger():
		m.ledger = NewLedgerModel(m.opts.Store, m.opts.Wallet, m.opts.Width, m.opts.Height)
		m.screen = screenLedger
		return m, m.ledger.Init()

	case m.menu.Selected() != "":
		game, err := NewGameModel(GameOptions{
			Mode:   m.menu.Selected(),
			Config: m.opts.Config,
			Wallet: m.opts.Wallet,
			Seed:   m.opts.Seed,
			FPS:    m.opts.FPS,
			Width:  m.opts.Width,
			Height: m.opts.Height,
			Logger: m.opts.Logger,
		})
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.opts.Logger.Error("cannot open game", "mode", m.menu.Selected(), "err", err)
			return m.backToMenu()
		}
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateLedger(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.ledger.Update(msg)
	m.ledger = next.(LedgerModel)

	if m.ledger.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.ledger.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu drops the current screen and shows a fresh menu.
func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = GameModel{}
	m.menu = NewMenuModel(m.opts.Config, m.opts.Wallet, m.opts.Width, m.opts.Height)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenLedger:
		return m.ledger.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting returns true if the user left the arcade.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

// RunApp runs the arcade menu flow in the local terminal.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
