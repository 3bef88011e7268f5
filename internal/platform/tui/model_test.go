package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/economy"
	"github.com/vovakirdan/pet-arcade/internal/games/catch"

	_ "github.com/vovakirdan/pet-arcade/internal/games/click"
	_ "github.com/vovakirdan/pet-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pet-arcade/internal/games/snake"
	_ "github.com/vovakirdan/pet-arcade/internal/games/target"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestGame(t *testing.T, mode core.Mode) (GameModel, *economy.Wallet) {
	t.Helper()
	wallet := economy.Open("tester", nil, nil)
	m, err := NewGameModel(GameOptions{
		Mode:   mode,
		Config: config.DefaultConfig(),
		Wallet: wallet,
		Seed:   7,
		FPS:    60,
		Width:  80,
		Height: 24,
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m, wallet
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

// tickFor advances the model in 100ms ticks starting at start.
func tickFor(t *testing.T, m GameModel, start time.Time, d time.Duration) (GameModel, time.Time) {
	t.Helper()
	now := start
	for end := start.Add(d); now.Before(end); now = now.Add(100 * time.Millisecond) {
		m = send(t, m, TickMsg{ID: m.chain, Time: now})
	}
	return m, now
}

func TestNewGameModelUnknownMode(t *testing.T) {
	if _, err := NewGameModel(GameOptions{Mode: "tetris", Config: config.DefaultConfig()}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestGameModelClickSessionPaysReward(t *testing.T) {
	m, wallet := newTestGame(t, core.ModeClick)
	start := time.Unix(5000, 0)

	if !strings.Contains(m.View(), "Enter: start") {
		t.Error("idle view should offer to start")
	}

	m = send(t, m, keyEnter)
	if !m.ctrl.Running() {
		t.Fatal("Enter should start the session")
	}
	for range 5 {
		m = send(t, m, keySpace)
	}

	m, _ = tickFor(t, m, start, 16*time.Second)

	res, ok := m.Result()
	if !ok {
		t.Fatal("session should have ended after the countdown")
	}
	if res.Score != 5 || res.Reward != 5 || res.Reason != core.ReasonTimeExpired {
		t.Errorf("result = %+v", res)
	}
	if wallet.Balance() != 5 {
		t.Errorf("Balance() = %d, want 5", wallet.Balance())
	}
	if !strings.Contains(m.View(), "earned $5") {
		t.Errorf("result view missing reward:\n%s", m.View())
	}

	// Enter plays again
	m = send(t, m, keyEnter)
	if !m.ctrl.Running() {
		t.Error("Enter after a result should start a new session")
	}
}

func TestGameModelBackClosesWithoutReward(t *testing.T) {
	m, wallet := newTestGame(t, core.ModeClick)
	start := time.Unix(5000, 0)

	m = send(t, m, keyEnter)
	m = send(t, m, keySpace)
	m, _ = tickFor(t, m, start, time.Second)
	m = send(t, m, keyEsc)

	if !m.BackToMenu() {
		t.Error("Esc should request the menu")
	}
	m, _ = tickFor(t, m, start.Add(time.Second), 20*time.Second)
	if _, ok := m.Result(); ok {
		t.Error("closed session must not produce a result")
	}
	if wallet.Balance() != 0 {
		t.Errorf("Balance() = %d, want 0", wallet.Balance())
	}
}

func TestGameModelBlurPauses(t *testing.T) {
	m, _ := newTestGame(t, core.ModeClick)
	start := time.Unix(5000, 0)

	m = send(t, m, keyEnter)
	m = send(t, m, tea.BlurMsg{})
	m, now := tickFor(t, m, start, 30*time.Second)

	if !m.ctrl.Running() {
		t.Fatal("hidden session should not count down")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("view should show the pause")
	}

	m = send(t, m, tea.FocusMsg{})
	m, _ = tickFor(t, m, now, 16*time.Second)
	if _, ok := m.Result(); !ok {
		t.Error("session should end after focus returns")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, _ := newTestGame(t, core.ModeClick)
	next, cmd := m.Update(TickMsg{ID: m.chain + 1000, Time: time.Now()})
	if cmd != nil {
		t.Error("foreign tick must not continue a chain")
	}
	if next.(GameModel).loop.NowMs() != 0 {
		t.Error("foreign tick must not advance the loop")
	}
}

func TestGameModelCatchHoldEmulation(t *testing.T) {
	m, _ := newTestGame(t, core.ModeCatch)
	start := time.Unix(5000, 0)
	m.now = func() time.Time { return start }

	m = send(t, m, keyEnter)
	x0 := m.ctrl.State().(catch.State).PlayerX

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, now := tickFor(t, m, start, 400*time.Millisecond)
	x1 := m.ctrl.State().(catch.State).PlayerX
	if x1 <= x0 {
		t.Fatalf("paddle should move right while held: %v -> %v", x0, x1)
	}

	// No repeat arrives: the hold expires and the paddle stops
	m, now = tickFor(t, m, now, 300*time.Millisecond)
	x2 := m.ctrl.State().(catch.State).PlayerX
	m, _ = tickFor(t, m, now, 300*time.Millisecond)
	x3 := m.ctrl.State().(catch.State).PlayerX
	if x3 != x2 {
		t.Errorf("paddle should stop after release: %v -> %v", x2, x3)
	}
}

func TestGameModelTargetMouse(t *testing.T) {
	m, _ := newTestGame(t, core.ModeTarget)

	// Any press on the idle screen starts
	m = send(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.ctrl.Running() {
		t.Fatal("click should start the session")
	}

	// Releases and presses outside the canvas are ignored
	m = send(t, m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.ctrl.Session().Score != 0 {
		t.Errorf("score = %d, want 0", m.ctrl.Session().Score)
	}
}

func TestAppModelNavigation(t *testing.T) {
	app := NewAppModel(AppOptions{Config: config.DefaultConfig(), Width: 80, Height: 24})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := app.Update(msg)
		app = next.(AppModel)
	}

	if !strings.Contains(app.View(), "Click Challenge") {
		t.Errorf("menu should list Click Challenge:\n%s", app.View())
	}

	step(keyEnter)
	if app.screen != screenGame || app.game.mode != core.ModeClick {
		t.Fatalf("Enter should open the first minigame, screen=%v", app.screen)
	}

	step(keyEsc)
	if app.screen != screenMenu {
		t.Fatalf("Esc should return to the menu, screen=%v", app.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if app.screen != screenScoreboard {
		t.Fatalf("Tab should open the scoreboard, screen=%v", app.screen)
	}
	step(keyEsc)

	step(runeKey("l"))
	if app.screen != screenLedger {
		t.Fatalf("L should open the ledger, screen=%v", app.screen)
	}
	step(keyEsc)

	step(runeKey("q"))
	if !app.IsQuitting() {
		t.Error("q should quit")
	}
}
