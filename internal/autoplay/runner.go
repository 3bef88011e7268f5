package autoplay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pet-arcade/internal/clock"
	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
	"github.com/vovakirdan/pet-arcade/internal/session"
)

// ErrStalled is returned when a session outlives its countdown.
var ErrStalled = errors.New("autoplay: session did not end")

// Options configures Run.
type Options struct {
	Mode           core.Mode
	Config         config.Config
	Seed           int64
	FPS            int // Frames per simulated second, default 60
	ReactionFrames int // Frames between bot taps, default 6
	Economy        session.Economy
	Checkpoint     session.Checkpointer
	Logger         *log.Logger
}

// Report describes a finished headless session.
type Report struct {
	Result      session.Result
	Frames      int
	SimulatedMs float64
	Commands    int
}

// Run plays one session of opts.Mode with its bot as fast as possible.
// Simulated time advances in fixed frames, so a seed always replays the same session.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.ReactionFrames <= 0 {
		opts.ReactionFrames = 6
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	sim, err := registry.Create(opts.Mode, opts.Config)
	if err != nil {
		return Report{}, fmt.Errorf("autoplay: %w", err)
	}
	bot, ok := NewBot(opts.Mode, opts.Config, opts.ReactionFrames)
	if !ok {
		return Report{}, fmt.Errorf("autoplay: no bot for mode %q", opts.Mode)
	}

	var (
		report Report
		done   bool
	)
	loop := clock.NewLoop()
	ctrl, err := session.New(session.Options{
		Config:     opts.Config,
		Simulators: map[core.Mode]registry.Simulator{opts.Mode: sim},
		Scheduler:  loop,
		RNG:        core.NewRNG(opts.Seed),
		Economy:    opts.Economy,
		Checkpoint: opts.Checkpoint,
		OnResult: func(r session.Result) {
			report.Result = r
			done = true
		},
		Logger: opts.Logger,
	})
	if err != nil {
		return Report{}, fmt.Errorf("autoplay: %w", err)
	}

	ctrl.Open(opts.Mode)
	ctrl.Start()

	frameMs := 1000.0 / float64(opts.FPS)
	limitMs := float64(opts.Config.Duration(opts.Mode)+2) * 1000
	for !done {
		if report.Frames%opts.FPS == 0 {
			if err := ctx.Err(); err != nil {
				ctrl.Close()
				return report, err
			}
		}
		if loop.NowMs() > limitMs {
			ctrl.Close()
			return report, ErrStalled
		}

		for _, cmd := range bot.Decide(ctrl.State()) {
			ctrl.Apply(cmd)
			report.Commands++
		}
		loop.Advance(frameMs)
		report.Frames++
	}

	report.SimulatedMs = loop.NowMs()
	opts.Logger.Debug("autoplay finished",
		"mode", opts.Mode,
		"score", report.Result.Score,
		"frames", report.Frames,
		"commands", report.Commands,
	)
	return report, nil
}
