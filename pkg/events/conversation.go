package events

import "time"

const (
	TypeQueryModeEntered = "QUERY_MODE_ENTERED"
	TypeQueryAnswered    = "QUERY_ANSWERED"
	TypeQueryModeExited  = "QUERY_MODE_EXITED"
	TypeSessionExpired   = "SESSION_EXPIRED"
)

func QueryModeEntered(userID string, expiresAt, at time.Time) BaseEvent {
	return newEvent(TypeQueryModeEntered, map[string]interface{}{
		"user_id":    userID,
		"expires_at": expiresAt,
	}, at)
}

func QueryAnswered(userID, query string, media int, at time.Time) BaseEvent {
	return newEvent(TypeQueryAnswered, map[string]interface{}{
		"user_id": userID,
		"query":   query,
		"media":   media,
	}, at)
}

func QueryModeExited(userID, command string, at time.Time) BaseEvent {
	return newEvent(TypeQueryModeExited, map[string]interface{}{
		"user_id": userID,
		"command": command,
	}, at)
}

func SessionExpired(userID string, expiredAt, at time.Time) BaseEvent {
	return newEvent(TypeSessionExpired, map[string]interface{}{
		"user_id":    userID,
		"expired_at": expiredAt,
	}, at)
}
