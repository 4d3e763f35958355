package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bot:session:"

// SessionRepository stores sessions in Redis so a restarted bot keeps
// users in the mode they were in. Failures are logged and behave as a miss.
type SessionRepository struct {
	rdb     *redis.Client
	idleTTL time.Duration
	logger  logger.ILogger
}

func NewSessionRepository(rdb *redis.Client, idleTTL time.Duration, log logger.ILogger) *SessionRepository {
	if idleTTL <= 0 {
		idleTTL = time.Hour
	}
	return &SessionRepository{rdb: rdb, idleTTL: idleTTL, logger: log}
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("SessionStore", "Failed to encode session", map[string]interface{}{"error": err.Error(), "user_id": session.UserID})
		return
	}
	if err := r.rdb.Set(ctx, keyPrefix+session.UserID, data, r.idleTTL).Err(); err != nil {
		r.logger.Error("SessionStore", "Failed to save session", map[string]interface{}{"error": err.Error(), "user_id": session.UserID})
	}
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*store.Session, bool) {
	data, err := r.rdb.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("SessionStore", "Failed to load session", map[string]interface{}{"error": err.Error(), "user_id": userID})
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warn("SessionStore", "Corrupt session payload", map[string]interface{}{"error": err.Error(), "user_id": userID})
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Clear(ctx context.Context, userID string) {
	if err := r.rdb.Del(ctx, keyPrefix+userID).Err(); err != nil {
		r.logger.Warn("SessionStore", "Failed to clear session", map[string]interface{}{"error": err.Error(), "user_id": userID})
	}
}
