package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"companion-srv/internal/chat"
	kafkaDelivery "companion-srv/internal/chat/delivery/kafka"
)

// PublishMessageProcessed publishes an anonymized message.processed event.
func (p *implProducer) PublishMessageProcessed(ctx context.Context, event chat.MessageProcessedEvent) error {
	msg := kafkaDelivery.MessageProcessedMessage{
		EventType:        kafkaDelivery.EventTypeMessageProcessed,
		ConversationID:   event.ConversationID,
		UserHash:         event.UserHash,
		Emotion:          event.Emotion,
		SafetyLevel:      event.SafetyLevel,
		CrisisDetected:   event.CrisisDetected,
		Backend:          event.Backend,
		ResponseType:     event.ResponseType,
		ProcessingTimeMs: event.ProcessingTimeMs,
		OccurredAt:       event.OccurredAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message.processed event: %w", err)
	}

	key := []byte(event.ConversationID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish message.processed event: %w", err)
	}

	p.l.Debugf(ctx, "Published message.processed for conversation %s (%s)", event.ConversationID, event.Emotion)
	return nil
}
