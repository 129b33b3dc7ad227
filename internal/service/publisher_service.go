package service

import (
	"context"
	"encoding/json"
	"time"

	"krishi-sakhi-be/internal/pkg/logger"
	"krishi-sakhi-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

type eventEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (ps *publisherService) Publish(ctx context.Context, event events.Event) error {
	envelope := eventEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.log.Warn("publisher", "failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
		return err
	}
	return nil
}
