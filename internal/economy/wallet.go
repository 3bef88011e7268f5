// Package economy is the reward sink of minigame sessions: a per-owner
// wallet with an activity ledger, backed by an optional store.
package economy

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pet-arcade/internal/session"
	"github.com/vovakirdan/pet-arcade/internal/storage"
)

// Store persists wallets. *storage.Store implements it.
type Store interface {
	LoadBalance(owner string) (int, bool, error)
	AddBalance(owner string, delta int) (int, error)
	AppendLedger(owner string, amount int, reason string) (int64, error)
	SaveResult(r storage.ResultEntry) (int64, error)
}

// Wallet holds the balance of one owner.
// Rewards are kept in memory until Checkpoint adds them to the stored row,
// so several wallets of one owner can share a store. Store failures are
// logged and never reach the caller.
type Wallet struct {
	mu      sync.Mutex
	owner   string
	balance int
	pending int // Rewarded but not yet added to the store
	earned  int // Sum of rewards since the wallet was opened
	store   Store
	logger  *log.Logger
}

// Open loads the wallet of owner from store.
// A nil store gives a purely in-memory wallet.
func Open(owner string, store Store, logger *log.Logger) *Wallet {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &Wallet{owner: owner, store: store, logger: logger}
	if store == nil {
		return w
	}

	balance, ok, err := store.LoadBalance(owner)
	switch {
	case err != nil:
		logger.Warn("cannot load wallet, starting empty", "owner", owner, "err", err)
	case ok:
		w.balance = balance
	}
	return w
}

// LedgerReason is the activity line recorded for a reward.
func LedgerReason(amount int, title string) string {
	return fmt.Sprintf("Earned $%d from %s", amount, title)
}

// RewardMoney credits amount to the wallet and appends a ledger entry.
// reason is the title of the minigame that paid the reward.
// Negative amounts are ignored.
func (w *Wallet) RewardMoney(amount int, reason string) {
	if amount < 0 {
		return
	}

	w.mu.Lock()
	w.balance += amount
	w.pending += amount
	w.earned += amount
	balance := w.balance
	w.mu.Unlock()

	w.logger.Info("reward paid", "owner", w.owner, "amount", amount, "balance", balance, "from", reason)
	if w.store == nil {
		return
	}
	if _, err := w.store.AppendLedger(w.owner, amount, LedgerReason(amount, reason)); err != nil {
		w.logger.Warn("cannot append ledger", "owner", w.owner, "err", err)
	}
}

// Checkpoint adds the pending rewards to the stored balance and refreshes
// the in-memory balance from the row. Rewards stay pending when the store
// fails.
func (w *Wallet) Checkpoint() {
	if w.store == nil {
		return
	}

	w.mu.Lock()
	delta := w.pending
	w.pending = 0
	w.mu.Unlock()

	stored, err := w.store.AddBalance(w.owner, delta)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.pending += delta
		w.logger.Warn("cannot save wallet", "owner", w.owner, "pending", w.pending, "err", err)
		return
	}
	w.balance = stored + w.pending
}

// RecordResult stores a finished session for the scoreboard.
func (w *Wallet) RecordResult(r session.Result) {
	if w.store == nil {
		return
	}
	entry := storage.ResultEntry{
		SessionID: r.SessionID.String(),
		Owner:     w.owner,
		Mode:      r.Mode.String(),
		Score:     r.Score,
		Reward:    r.Reward,
		Reason:    string(r.Reason),
		Elapsed:   int(r.Elapsed.Seconds()),
	}
	if _, err := w.store.SaveResult(entry); err != nil {
		w.logger.Warn("cannot save result", "owner", w.owner, "mode", entry.Mode, "err", err)
	}
}

// Balance returns the current balance.
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Earned returns the total rewarded since Open.
func (w *Wallet) Earned() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.earned
}

// Owner returns the wallet owner.
func (w *Wallet) Owner() string { return w.owner }
