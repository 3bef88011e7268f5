// Package session runs one minigame at a time: it owns the live game state,
// drives the countdown and the frame loop, and pays out the reward when a
// session ends.
package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pet-arcade/internal/clock"
	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
	"github.com/vovakirdan/pet-arcade/internal/reward"
)

// HUD receives the two status fields shown next to the play surface.
type HUD interface {
	SetHUD(leftLabel, leftValue, rightLabel, rightValue string)
}

// Economy receives the reward of every finished session.
type Economy interface {
	RewardMoney(amount int, reason string)
}

// Checkpointer persists progress after a reward was paid.
type Checkpointer interface {
	Checkpoint()
}

// Session is a snapshot of the controller's current session.
type Session struct {
	ID               uuid.UUID // Zero until started
	Mode             core.Mode
	Running          bool
	RemainingSeconds int
	Score            int
}

// Result describes a terminated session.
type Result struct {
	SessionID uuid.UUID
	Mode      core.Mode
	Title     string
	Score     int
	Reward    int
	Reason    core.Reason
	Elapsed   time.Duration // Countdown time consumed
}

// Options configures a Controller. Only Scheduler is required.
type Options struct {
	Config     config.Config // Normalized by New; a zero Config plays with the defaults
	Simulators map[core.Mode]registry.Simulator // Defaults to every registered simulator
	Scheduler  clock.Scheduler
	RNG        core.RNG
	Surface    core.Surface // Rendering is skipped when nil
	HUD        HUD
	Economy    Economy
	Checkpoint Checkpointer
	OnResult   func(Result)
	Logger     *log.Logger
}

// ErrNoScheduler is returned by New when Options.Scheduler is nil.
var ErrNoScheduler = errors.New("session: scheduler is required")

// Controller owns the open minigame and its state.
// It is driven from a single goroutine through its scheduler.
type Controller struct {
	cfg       config.Config
	sims      map[core.Mode]registry.Simulator
	sched     clock.Scheduler
	rng       core.RNG
	surface   core.Surface
	hud       HUD
	economy   Economy
	checkpt   Checkpointer
	onResult  func(Result)
	logger    *log.Logger
	converter *reward.Converter

	sim       registry.Simulator
	state     core.GameState
	session   Session
	pending   []core.Command
	gen       uint64 // Bumped whenever loops are cancelled
	ticker    clock.Handle
	nextFrame clock.Handle
}

// New creates a closed controller.
func New(opts Options) (*Controller, error) {
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if opts.RNG == nil {
		opts.RNG = core.NewRNG(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg, replaced := config.Normalize(opts.Config)
	if len(replaced) > 0 {
		opts.Logger.Debug("config values replaced by defaults", "fields", replaced)
	}
	opts.Config = cfg
	if opts.Simulators == nil {
		opts.Simulators = registry.Build(opts.Config)
	}

	return &Controller{
		cfg:       opts.Config,
		sims:      opts.Simulators,
		sched:     opts.Scheduler,
		rng:       opts.RNG,
		surface:   opts.Surface,
		hud:       opts.HUD,
		economy:   opts.Economy,
		checkpt:   opts.Checkpoint,
		onResult:  opts.OnResult,
		logger:    opts.Logger,
		converter: reward.NewConverter(opts.Config),
	}, nil
}

// Open stops any current session without reward and prepares mode in the idle state.
// Unknown modes are ignored.
func (c *Controller) Open(mode core.Mode) {
	sim, ok := c.sims[mode]
	if !ok {
		c.logger.Debug("ignoring unknown mode", "mode", mode)
		return
	}
	if c.session.Mode != core.ModeNone {
		c.Close()
	}

	c.sim = sim
	c.state = sim.Reset(c.rng)
	c.pending = c.pending[:0]
	c.session = Session{
		Mode:             mode,
		RemainingSeconds: c.cfg.Duration(mode),
	}
	c.logger.Debug("opened", "mode", mode, "seconds", c.session.RemainingSeconds)

	c.render()
	c.updateHUD()
}

// Start begins the countdown and the frame loop of the open mode.
// No-op when nothing is open or the session already runs.
func (c *Controller) Start() {
	if c.sim == nil || c.session.Running {
		return
	}
	c.session.Running = true
	c.session.ID = uuid.New()
	c.gen++
	gen := c.gen

	c.ticker = c.sched.Every(time.Second, func() {
		if c.gen != gen {
			return
		}
		c.Tick()
	})
	c.requestFrame(gen)
	c.logger.Debug("started", "mode", c.session.Mode, "session", c.session.ID)
}

func (c *Controller) requestFrame(gen uint64) {
	c.nextFrame = c.sched.RequestFrame(func(deltaMs float64) {
		if c.gen != gen {
			return
		}
		c.nextFrame = nil
		c.Frame(deltaMs)
		if c.session.Running && c.gen == gen {
			c.requestFrame(gen)
		}
	})
}

// Apply buffers a command for the next frame or tick.
// Commands are dropped when no session is running.
func (c *Controller) Apply(cmd core.Command) {
	if !c.session.Running {
		return
	}
	c.pending = append(c.pending, cmd)
}

// drain folds buffered commands into the state in arrival order.
func (c *Controller) drain() {
	for _, cmd := range c.pending {
		c.state = c.sim.Apply(c.state, cmd)
	}
	c.pending = c.pending[:0]
}

// Tick runs one countdown second.
func (c *Controller) Tick() {
	if !c.session.Running {
		return
	}
	c.drain()
	c.session.RemainingSeconds--
	c.updateHUD()
	if c.session.RemainingSeconds <= 0 {
		c.terminate(core.ReasonTimeExpired)
	}
}

// Frame advances the simulation by deltaMs and redraws.
func (c *Controller) Frame(deltaMs float64) {
	if !c.session.Running {
		return
	}
	c.drain()
	res := c.sim.Step(c.state, deltaMs, c.rng)
	c.state = res.State
	c.render()
	c.updateHUD()
	if res.Terminal {
		c.terminate(core.ReasonCollision)
	}
}

// Close discards the open session without paying a reward.
func (c *Controller) Close() {
	if c.session.Mode == core.ModeNone {
		return
	}
	c.logger.Debug("closed", "mode", c.session.Mode, "running", c.session.Running)
	c.stopLoops()
	c.reset()
}

func (c *Controller) stopLoops() {
	c.gen++
	if c.ticker != nil {
		c.ticker.Cancel()
		c.ticker = nil
	}
	if c.nextFrame != nil {
		c.nextFrame.Cancel()
		c.nextFrame = nil
	}
}

func (c *Controller) reset() {
	c.sim = nil
	c.state = nil
	c.pending = c.pending[:0]
	c.session = Session{}
}

// terminate ends a running session: reward, checkpoint, result, closed.
func (c *Controller) terminate(reason core.Reason) {
	c.stopLoops()

	mode := c.session.Mode
	score := c.state.Score()
	amount := c.converter.Convert(mode, score)
	title := c.sim.Title()
	elapsed := c.cfg.Duration(mode) - max(0, c.session.RemainingSeconds)
	res := Result{
		SessionID: c.session.ID,
		Mode:      mode,
		Title:     title,
		Score:     score,
		Reward:    amount,
		Reason:    reason,
		Elapsed:   time.Duration(elapsed) * time.Second,
	}
	c.reset()

	c.logger.Info("session ended", "mode", mode, "reason", reason, "score", score, "reward", amount)
	if c.economy != nil {
		c.economy.RewardMoney(amount, title)
	}
	if c.checkpt != nil {
		c.checkpt.Checkpoint()
	}
	if c.onResult != nil {
		c.onResult(res)
	}
}

func (c *Controller) render() {
	if c.surface == nil || c.sim == nil {
		return
	}
	c.sim.Render(c.state, c.surface)
}

func (c *Controller) updateHUD() {
	if c.hud == nil || c.sim == nil {
		return
	}
	c.hud.SetHUD(
		"Time", fmt.Sprintf("%ds", max(0, c.session.RemainingSeconds)),
		c.sim.ScoreLabel(), strconv.Itoa(c.state.Score()),
	)
}

// Mode returns the open mode, ModeNone when closed.
func (c *Controller) Mode() core.Mode { return c.session.Mode }

// Running reports whether the open session runs.
func (c *Controller) Running() bool { return c.session.Running }

// Title returns the display name of the open mode.
func (c *Controller) Title() string {
	if c.sim == nil {
		return ""
	}
	return c.sim.Title()
}

// Session returns a snapshot of the current session.
func (c *Controller) Session() Session {
	s := c.session
	if c.state != nil {
		s.Score = c.state.Score()
	}
	return s
}

// State returns the live game state, nil when closed.
func (c *Controller) State() core.GameState { return c.state }
