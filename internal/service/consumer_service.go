package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/logger"
	"github.com/ingunnnaevdal/masterevaluering/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService tails evaluation.saved events and writes a structured
// progress record per submission. This keeps a per-user completion trail in
// the log file without touching the request path.
type consumerService struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		log:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicEvaluationSaved)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload events.EvaluationSaved
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal evaluation.saved event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed events are not retriable
		return
	}

	cs.log.Info("consumer", "evaluation saved", map[string]interface{}{
		"bruker_id": payload.BrukerID,
		"uuid":      payload.ArticleUUID,
		"position":  payload.CursorPos + 1,
		"total":     payload.Total,
	})
	msg.Ack()
}
