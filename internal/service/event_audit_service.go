package service

import (
	"context"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/events"
	pktNats "sales-assistant-bot/pkg/nats"
)

const auditDurable = "conversation-audit"

type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

// EventAuditService writes every conversation event from the bus into the
// audit log.
type EventAuditService struct {
	subscriber EventSubscriber
	logger     logger.ILogger
}

func NewEventAuditService(sub EventSubscriber, log logger.ILogger) *EventAuditService {
	return &EventAuditService{subscriber: sub, logger: log}
}

func (s *EventAuditService) Start(ctx context.Context) error {
	subject := pktNats.SubjectPrefix + ">"
	if err := s.subscriber.Subscribe(ctx, subject, auditDurable, s.handleEvent); err != nil {
		s.logger.Error("EventAudit", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("EventAudit", "Listening for conversation events", map[string]interface{}{"subject": subject})
	return nil
}

func (s *EventAuditService) handleEvent(_ context.Context, event events.Event) error {
	details := map[string]interface{}{
		"event_id":    event.EventID(),
		"type":        event.EventType(),
		"occurred_at": event.Timestamp(),
	}
	for k, v := range event.Payload() {
		details[k] = v
	}

	if event.EventType() == events.TypeSessionExpired {
		s.logger.Warn("EventAudit", "Query session expired", details)
		return nil
	}
	s.logger.Info("EventAudit", "Conversation event", details)
	return nil
}
