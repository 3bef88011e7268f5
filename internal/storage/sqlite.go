// Package storage provides SQLite-based persistence for session results,
// wallets and the reward ledger.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
// It is safe for concurrent use by several sessions.
type Store struct {
	db *sql.DB
}

// ResultEntry is the record of one finished minigame session.
type ResultEntry struct {
	ID        int64
	SessionID string
	Owner     string
	Mode      string
	Score     int
	Reward    int
	Reason    string
	Elapsed   int // Seconds of countdown consumed
	CreatedAt time.Time
}

// LedgerEntry is one wallet movement.
type LedgerEntry struct {
	ID        int64
	Owner     string
	Amount    int
	Reason    string
	CreatedAt time.Time
}

// ModeStats contains aggregated statistics for a minigame.
type ModeStats struct {
	Mode        string
	Sessions    int
	HighScore   int
	AvgScore    float64
	TotalReward int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			owner TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			reward INTEGER NOT NULL,
			reason TEXT NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_owner ON results(owner);

		CREATE TABLE IF NOT EXISTS wallets (
			owner TEXT PRIMARY KEY,
			balance INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS ledger (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL,
			amount INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_ledger_owner ON ledger(owner, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("storage: ping failed: %w", err)
	}
	return nil
}

// SaveResult records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results (session_id, owner, mode, score, reward, reason, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Owner, r.Mode, r.Score, r.Reward, r.Reason, r.Elapsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, session_id, owner, mode, score, reward, reason, elapsed_secs, created_at`

// TopScores retrieves the top N results for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
}

// RecentResults retrieves the latest results of an owner, newest first.
func (s *Store) RecentResults(owner string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE owner = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		owner, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]ResultEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Owner, &e.Mode, &e.Score, &e.Reward,
			&e.Reason, &e.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no results exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all results for the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// AllModeStats retrieves statistics for every mode that has been played.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(reward), MAX(created_at)
		 FROM results
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var st ModeStats
		var lastPlayed any
		if err := rows.Scan(&st.Mode, &st.Sessions, &st.HighScore, &st.AvgScore, &st.TotalReward, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// AppendLedger records a wallet movement for an owner.
func (s *Store) AppendLedger(owner string, amount int, reason string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO ledger (owner, amount, reason) VALUES (?, ?, ?)",
		owner, amount, reason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot append ledger: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Ledger retrieves the latest ledger entries of an owner, newest first.
func (s *Store) Ledger(owner string, limit int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, owner, amount, reason, created_at
		 FROM ledger
		 WHERE owner = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		owner, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Owner, &e.Amount, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// AddBalance adds delta to the stored balance of an owner, creating the
// wallet if needed, and returns the balance after the update.
// Several wallets of the same owner may add concurrently.
func (s *Store) AddBalance(owner string, delta int) (int, error) {
	var balance int
	err := s.db.QueryRow(
		`INSERT INTO wallets (owner, balance, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(owner) DO UPDATE SET balance = wallets.balance + excluded.balance, updated_at = excluded.updated_at
		 RETURNING balance`,
		owner, delta,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add balance: %w", err)
	}
	return balance, nil
}

// LoadBalance returns the stored balance of an owner.
// ok is false when the owner has no wallet yet.
func (s *Store) LoadBalance(owner string) (balance int, ok bool, err error) {
	err = s.db.QueryRow("SELECT balance FROM wallets WHERE owner = ?", owner).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load balance: %w", err)
	}
	return balance, true, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
