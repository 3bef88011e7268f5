package api

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ModeResponse describes a registered minigame.
type ModeResponse struct {
	Mode       string `json:"mode"`
	Title      string `json:"title"`
	ScoreLabel string `json:"score_label"`
	Info       string `json:"info"`
}

// WalletResponse is the body of GET /v1/wallets/{owner}.
type WalletResponse struct {
	Owner   string `json:"owner"`
	Balance int    `json:"balance"`
}

// LedgerResponse is one ledger entry.
type LedgerResponse struct {
	ID        int64  `json:"id"`
	Amount    int    `json:"amount"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ScoresResponse is the body of GET /v1/scores/{mode}.
type ScoresResponse struct {
	Mode      string          `json:"mode"`
	HighScore int             `json:"high_score"`
	Scores    []ScoreResponse `json:"scores"`
}

// ScoreResponse is one scoreboard row.
type ScoreResponse struct {
	SessionID string `json:"session_id"`
	Owner     string `json:"owner"`
	Score     int    `json:"score"`
	Reward    int    `json:"reward"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at,omitempty"`
}

// StatsResponse aggregates the results of one mode.
type StatsResponse struct {
	Mode        string  `json:"mode"`
	Sessions    int     `json:"sessions"`
	HighScore   int     `json:"high_score"`
	AvgScore    float64 `json:"avg_score"`
	TotalReward int64   `json:"total_reward"`
	LastPlayed  string  `json:"last_played,omitempty"`
}
