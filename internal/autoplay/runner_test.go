package autoplay

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"

	_ "github.com/vovakirdan/pet-arcade/internal/games/click"
)

type countingWallet struct {
	rewards     []int
	checkpoints int
}

func (w *countingWallet) RewardMoney(amount int, _ string) { w.rewards = append(w.rewards, amount) }
func (w *countingWallet) Checkpoint()                      { w.checkpoints++ }

func TestRunEveryMode(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, mode := range core.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			wallet := &countingWallet{}
			report, err := Run(context.Background(), Options{
				Mode:       mode,
				Config:     cfg,
				Seed:       42,
				Economy:    wallet,
				Checkpoint: wallet,
			})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			res := report.Result
			if res.Mode != mode {
				t.Errorf("Mode = %v, want %v", res.Mode, mode)
			}
			if res.Score < 0 {
				t.Errorf("Score = %d", res.Score)
			}
			if len(wallet.rewards) != 1 || wallet.rewards[0] != res.Reward {
				t.Errorf("rewards = %v, want exactly [%d]", wallet.rewards, res.Reward)
			}
			if wallet.checkpoints != 1 {
				t.Errorf("checkpoints = %d, want 1", wallet.checkpoints)
			}
			if report.SimulatedMs > float64(cfg.Duration(mode)+1)*1000 {
				t.Errorf("session ran %.0fms, longer than its countdown", report.SimulatedMs)
			}
		})
	}
}

func TestRunClickScoresTaps(t *testing.T) {
	cfg := config.DefaultConfig()
	report, err := Run(context.Background(), Options{Mode: core.ModeClick, Config: cfg, Seed: 1, ReactionFrames: 6})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// 60 fps, a tap every 6 frames: 10 taps per second
	want := cfg.Duration(core.ModeClick) * 10
	if got := report.Result.Score; got < want-1 || got > want {
		t.Errorf("Score = %d, want about %d", got, want)
	}
	if report.Result.Reason != core.ReasonTimeExpired {
		t.Errorf("Reason = %v, want time-expired", report.Result.Reason)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, mode := range []core.Mode{core.ModeTarget, core.ModeCatch, core.ModeFlappy, core.ModeSnake} {
		a, errA := Run(context.Background(), Options{Mode: mode, Config: cfg, Seed: 99})
		b, errB := Run(context.Background(), Options{Mode: mode, Config: cfg, Seed: 99})
		if errA != nil || errB != nil {
			t.Fatalf("%s: Run() failed: %v / %v", mode, errA, errB)
		}
		if a.Result.Score != b.Result.Score || a.Frames != b.Frames || a.Commands != b.Commands {
			t.Errorf("%s: runs differ: %+v vs %+v", mode, a, b)
		}
	}
}

func TestRunTargetBotHits(t *testing.T) {
	report, err := Run(context.Background(), Options{Mode: core.ModeTarget, Config: config.DefaultConfig(), Seed: 3})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if report.Result.Score == 0 {
		t.Error("target bot should hit at least once")
	}
}

func TestRunUnknownMode(t *testing.T) {
	if _, err := Run(context.Background(), Options{Mode: "tetris", Config: config.DefaultConfig()}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Mode: core.ModeClick, Config: config.DefaultConfig()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
