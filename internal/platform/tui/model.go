package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pet-arcade/internal/clock"
	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/economy"
	"github.com/vovakirdan/pet-arcade/internal/input"
	"github.com/vovakirdan/pet-arcade/internal/registry"
	"github.com/vovakirdan/pet-arcade/internal/session"
)

// chromeRows is the number of terminal rows outside the canvas (HUD + status).
const chromeRows = 2

// GameOptions configures a GameModel.
type GameOptions struct {
	Mode   core.Mode
	Config config.Config
	Wallet *economy.Wallet // In-memory wallet when nil
	Seed   int64           // 0 = random based on time
	FPS    int
	Width  int
	Height int
	Logger *log.Logger
}

type phase int

const (
	phaseReady phase = iota
	phaseRunning
	phaseResult
)

// outcome receives the controller's result callback.
// Shared by every copy of the model.
type outcome struct {
	result *session.Result
}

// GameModel is the Bubble Tea model for playing one minigame.
type GameModel struct {
	mode    core.Mode
	info    registry.GameInfo
	fps     int
	chain   uint64
	loop    *clock.Loop
	ctrl    *session.Controller
	router  *input.Router
	canvas  *core.Canvas
	hud     *HUD
	wallet  *economy.Wallet
	keys    *KeyMapper
	held    *holdTracker
	outcome *outcome
	now     func() time.Time

	phase      phase
	result     session.Result
	last       time.Time
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model with the mode opened and idle.
func NewGameModel(opts GameOptions) (GameModel, error) {
	info, ok := registry.Lookup(opts.Mode)
	if !ok {
		return GameModel{}, fmt.Errorf("tui: unknown mode %q", opts.Mode)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Wallet == nil {
		opts.Wallet = economy.Open("local", nil, opts.Logger)
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	opts.Width = max(opts.Width, 20)
	opts.Height = max(opts.Height, chromeRows+4)

	m := GameModel{
		mode:    opts.Mode,
		info:    info,
		fps:     opts.FPS,
		chain:   nextChainID(),
		loop:    clock.NewLoop(),
		canvas:  core.NewCanvas(opts.Config.Surface.Width, opts.Config.Surface.Height, opts.Width, opts.Height-chromeRows),
		hud:     &HUD{},
		wallet:  opts.Wallet,
		keys:    NewKeyMapper(),
		held:    newHoldTracker(holdTimeout),
		outcome: &outcome{},
		now:     time.Now,
		width:   opts.Width,
		height:  opts.Height,
	}

	out, wallet := m.outcome, m.wallet
	ctrl, err := session.New(session.Options{
		Config:     opts.Config,
		Scheduler:  m.loop,
		RNG:        core.NewRNG(opts.Seed),
		Surface:    m.canvas,
		HUD:        m.hud,
		Economy:    wallet,
		Checkpoint: wallet,
		OnResult: func(r session.Result) {
			wallet.RecordResult(r)
			out.result = &r
		},
		Logger: opts.Logger,
	})
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}
	m.ctrl = ctrl
	m.router = input.NewRouter(ctrl, opts.Config.Surface)
	m.ctrl.Open(m.mode)

	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.chain, m.fps)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.loop.SetVisible(true)
		return m, nil

	case tea.BlurMsg:
		m.loop.SetVisible(false)
		return m, nil

	case TickMsg:
		if msg.ID != m.chain {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapGameKey(msg, m.phase == phaseRunning) {
	case GameActionQuit:
		m.ctrl.Close()
		m.quitting = true
		return m, tea.Quit
	case GameActionBack:
		m.ctrl.Close()
		m.backToMenu = true
		return m, nil
	case GameActionConfirm:
		m.start()
		return m, nil
	}

	if m.phase != phaseRunning {
		return m, nil
	}

	name := msg.String()
	switch m.mode {
	case core.ModeClick:
		if name == " " || name == "enter" {
			m.router.PointerDown(input.PointerDown{})
		}
	case core.ModeCatch:
		repeat, released := m.held.Press(name, m.now())
		for _, k := range released {
			m.router.KeyUp(input.KeyUp{Key: k})
		}
		m.router.KeyDown(input.KeyDown{Key: name, Repeat: repeat})
	default:
		// Every press is a fresh edge
		m.router.KeyDown(input.KeyDown{Key: name})
		m.router.KeyUp(input.KeyUp{Key: name})
	}
	return m, nil
}

// handleMouse routes left-button presses on the canvas.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch m.phase {
	case phaseReady:
		m.start()
		return m, nil
	case phaseResult:
		return m, nil
	}

	// Row 0 is the HUD; aim at the centre of the pressed cell
	row := msg.Y - 1
	if row < 0 || row >= m.canvas.Rows() {
		return m, nil
	}
	m.router.PointerDown(input.PointerDown{
		X:     float64(msg.X) + 0.5,
		Y:     float64(row) + 0.5,
		ViewW: float64(m.canvas.Cols()),
		ViewH: float64(m.canvas.Rows()),
	})
	return m, nil
}

// start begins a session, reopening the mode after a finished one.
func (m *GameModel) start() {
	if m.phase == phaseResult {
		m.ctrl.Open(m.mode)
	}
	m.held.Reset()
	m.router.Reset()
	m.ctrl.Start()
	if m.ctrl.Running() {
		m.phase = phaseRunning
	}
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = max(msg.Width, 20)
	m.height = max(msg.Height, chromeRows+4)
	m.canvas.Resize(m.width, m.height-chromeRows)

	// A running session repaints on its next frame
	if m.phase == phaseReady {
		m.ctrl.Open(m.mode)
	}
	return m, nil
}

// handleTick advances the scheduler by the wall time since the last tick.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	delta := 1000.0 / float64(m.fps)
	if !m.last.IsZero() {
		delta = float64(t.Sub(m.last)) / float64(time.Millisecond)
	}
	m.last = t

	if m.phase == phaseRunning {
		for _, k := range m.held.Expire(t) {
			m.router.KeyUp(input.KeyUp{Key: k})
		}
	}

	m.loop.Advance(delta)

	if r := m.outcome.result; r != nil {
		m.outcome.result = nil
		m.result = *r
		m.phase = phaseResult
		m.held.Reset()
		m.router.Reset()
	}

	// Continue ticking
	return m, tickCmd(m.chain, m.fps)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

var controlsByMode = map[core.Mode]string{
	core.ModeClick:  "Space/Enter or click: tap",
	core.ModeTarget: "Click the target",
	core.ModeCatch:  "Left/Right or A/D: move",
	core.ModeFlappy: "Space/Up or click: flap",
	core.ModeSnake:  "Arrows or WASD: steer",
}

// statusLine describes the current phase below the canvas.
func (m GameModel) statusLine() string {
	switch m.phase {
	case phaseRunning:
		if !m.loop.Visible() {
			return pausedStyle.Render("Paused") + statusStyle.Render("  ·  focus the terminal to resume")
		}
		return statusStyle.Render(controlsByMode[m.mode] + "  ·  Esc: menu  ·  Q: quit")
	case phaseResult:
		headline := "Time's up!"
		if m.result.Reason == core.ReasonCollision {
			headline = "Game over!"
		}
		return resultStyle.Render(fmt.Sprintf("%s %s %d  ·  earned $%d", headline, m.info.ScoreLabel, m.result.Score, m.result.Reward)) +
			statusStyle.Render("  ·  Enter: play again  ·  Esc: menu")
	default:
		return statusStyle.Render(m.info.Info + "  ·  Enter: start  ·  Esc: menu")
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	header := m.hud.Render(m.width, m.info.Title, m.wallet.Balance())
	return header + "\n" + RenderCanvas(m.canvas) + "\n" + m.statusLine()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Result returns the last finished session and whether one exists.
func (m GameModel) Result() (session.Result, bool) {
	return m.result, m.phase == phaseResult
}

// Run starts a Bubble Tea program playing one minigame.
// Esc leaves the program like Q does.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		standalone{model},
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer input for click and target
		tea.WithReportFocus(),     // Pause while the terminal is unfocused
	)

	_, err = p.Run()
	return err
}

// standalone quits the program when the game asks for the menu.
type standalone struct {
	GameModel
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	s.GameModel = next.(GameModel)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
