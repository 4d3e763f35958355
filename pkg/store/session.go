package store

import "time"

// Session is the per-user conversation state.
type Session struct {
	UserID string `json:"user_id"`
	Mode   string `json:"mode"` // "IDLE" | "AWAITING_QUERY"

	// ExpiresAt bounds AWAITING_QUERY. It is set once when the mode is
	// entered and is not pushed back by later messages.
	ExpiresAt time.Time `json:"expires_at"`

	LastQuery string    `json:"last_query"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ModeIdle          = "IDLE"
	ModeAwaitingQuery = "AWAITING_QUERY"
)

// AwaitingQuery reports whether free-form input is expected at instant now.
func (s *Session) AwaitingQuery(now time.Time) bool {
	return s != nil && s.Mode == ModeAwaitingQuery && now.Before(s.ExpiresAt)
}

// Expired reports an AWAITING_QUERY session whose window has closed.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && s.Mode == ModeAwaitingQuery && !now.Before(s.ExpiresAt)
}
