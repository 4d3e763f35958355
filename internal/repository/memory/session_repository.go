package memory

import (
	"context"
	"time"

	"sales-assistant-bot/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps conversation sessions in process memory.
// Query-mode expiry is decided by the caller from Session.ExpiresAt; the
// cache TTL only evicts users that went quiet.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(idleTTL time.Duration) *SessionRepository {
	if idleTTL <= 0 {
		idleTTL = time.Hour
	}
	c := cache.New(idleTTL, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(_ context.Context, session *store.Session) {
	copied := *session
	r.cache.Set(session.UserID, &copied, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(_ context.Context, userID string) (*store.Session, bool) {
	if x, found := r.cache.Get(userID); found {
		copied := *x.(*store.Session)
		return &copied, true
	}
	return nil, false
}

func (r *SessionRepository) Clear(_ context.Context, userID string) {
	r.cache.Delete(userID)
}
