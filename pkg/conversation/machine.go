package conversation

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/events"
	"sales-assistant-bot/pkg/menu"
	"sales-assistant-bot/pkg/rag/response"
	"sales-assistant-bot/pkg/store"
)

const DefaultQueryModeTimeout = 2 * time.Minute

var optionRegex = regexp.MustCompile(`\b[1-5]\b`)

// Reply is one outgoing message: either text or a single media reference.
type Reply struct {
	Text  string
	Media *store.MediaRef
}

type SessionStore interface {
	Get(ctx context.Context, userID string) (*store.Session, bool)
	Save(ctx context.Context, session *store.Session)
	Clear(ctx context.Context, userID string)
}

type MenuSource interface {
	Content(ctx context.Context) menu.Content
}

type QueryAnswerer interface {
	Answer(ctx context.Context, query string) response.Answer
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Clock func() time.Time

type Option func(*Machine)

func WithClock(clock Clock) Option {
	return func(m *Machine) {
		m.now = clock
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(m *Machine) {
		m.publisher = p
	}
}

func WithQueryModeTimeout(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.queryTimeout = d
		}
	}
}

// Machine decides the replies to a user message from the user's session:
// menu navigation while idle, catalog questions while awaiting a query.
type Machine struct {
	sessions     SessionStore
	menu         MenuSource
	answerer     QueryAnswerer
	publisher    EventPublisher
	queryTimeout time.Duration
	now          Clock
	logger       logger.ILogger
}

func NewMachine(sessions SessionStore, menuSource MenuSource, answerer QueryAnswerer, log logger.ILogger, opts ...Option) *Machine {
	m := &Machine{
		sessions:     sessions,
		menu:         menuSource,
		answerer:     answerer,
		queryTimeout: DefaultQueryModeTimeout,
		now:          time.Now,
		logger:       log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Handle(ctx context.Context, userID, text string) []Reply {
	message := strings.TrimSpace(text)
	lower := strings.ToLower(message)
	now := m.now()

	session := m.loadSession(ctx, userID, now)
	defer func() {
		session.UpdatedAt = now
		m.sessions.Save(ctx, session)
	}()

	if containsActivation(lower) {
		if session.Mode == store.ModeAwaitingQuery {
			m.logger.Info("Conversation", "Query mode reset by activation command", map[string]interface{}{"user_id": userID})
		}
		session.Mode = store.ModeIdle
		session.ExpiresAt = time.Time{}
		return []Reply{{Text: m.menu.Content(ctx).WelcomeText()}}
	}

	if session.Mode == store.ModeAwaitingQuery {
		return m.handleQueryMode(ctx, session, message, lower, now)
	}

	if _, silent := idleSilentCommands[lower]; silent {
		return nil
	}

	content := m.menu.Content(ctx)
	option := optionRegex.FindString(message)

	if option == queryOption {
		session.Mode = store.ModeAwaitingQuery
		session.ExpiresAt = now.Add(m.queryTimeout)
		m.publish(ctx, events.QueryModeEntered(userID, session.ExpiresAt, now))
		return []Reply{{Text: MsgQueryMode}}
	}

	if answer, ok := content.Answer(option); ok && option != "" {
		return []Reply{{Text: answer}}
	}

	m.logger.Debug("Conversation", "Invalid option", map[string]interface{}{"user_id": userID, "message": message})
	return []Reply{{Text: MsgInvalidOption}, {Text: content.WelcomeText()}}
}

func (m *Machine) handleQueryMode(ctx context.Context, session *store.Session, message, lower string, now time.Time) []Reply {
	if _, exit := exitCommands[lower]; exit {
		session.Mode = store.ModeIdle
		session.ExpiresAt = time.Time{}
		m.publish(ctx, events.QueryModeExited(session.UserID, lower, now))
		return []Reply{{Text: MsgExitQueryMode}, {Text: m.menu.Content(ctx).WelcomeText()}}
	}

	m.logger.Info("Conversation", "Catalog query received", map[string]interface{}{
		"user_id": session.UserID,
		"query":   message,
	})

	answer := m.answerer.Answer(ctx, message)
	session.LastQuery = message

	replies := []Reply{
		{Text: MsgSearching},
		{Text: answer.Text + MsgExitHint},
	}
	for i := range answer.Media {
		ref := answer.Media[i]
		replies = append(replies, Reply{Media: &ref})
	}

	m.publish(ctx, events.QueryAnswered(session.UserID, message, len(answer.Media), now))
	return replies
}

// loadSession returns the user's session, creating it on first contact.
// An AWAITING_QUERY session past its deadline comes back as IDLE.
func (m *Machine) loadSession(ctx context.Context, userID string, now time.Time) *store.Session {
	session, found := m.sessions.Get(ctx, userID)
	if !found || session == nil {
		return &store.Session{UserID: userID, Mode: store.ModeIdle}
	}

	if session.Expired(now) {
		m.logger.Info("Conversation", "Query mode expired", map[string]interface{}{
			"user_id":    userID,
			"expired_at": session.ExpiresAt,
		})
		m.publish(ctx, events.SessionExpired(userID, session.ExpiresAt, now))
		session.Mode = store.ModeIdle
		session.ExpiresAt = time.Time{}
		session.UpdatedAt = now
		m.sessions.Save(ctx, session)
	}
	return session
}

func (m *Machine) publish(ctx context.Context, event events.Event) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, event); err != nil {
		m.logger.Warn("Conversation", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

// State returns the mode the user is in right now, applying expiry.
func (m *Machine) State(ctx context.Context, userID string) string {
	session, found := m.sessions.Get(ctx, userID)
	if !found || session == nil {
		return store.ModeIdle
	}
	if session.AwaitingQuery(m.now()) {
		return store.ModeAwaitingQuery
	}
	return store.ModeIdle
}

// Reset forgets the user's session.
func (m *Machine) Reset(ctx context.Context, userID string) {
	m.sessions.Clear(ctx, userID)
}

func containsActivation(lower string) bool {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '!'
	})
	for _, w := range words {
		if _, ok := activationCommands[w]; ok {
			return true
		}
		if _, ok := activationCommands[strings.Trim(w, "!")]; ok {
			return true
		}
	}
	return false
}
