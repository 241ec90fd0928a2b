package messaging

import (
	"context"
	"fmt"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher is the slice of *amqp091.Channel the emitter needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQEventEmitter publishes claim events to a topic exchange, routed by event type.
type RabbitMQEventEmitter struct {
	pub      Publisher
	exchange string
}

var _ interfaces.IEventEmitter = (*RabbitMQEventEmitter)(nil)

func NewRabbitMQEventEmitter(pub Publisher, exchange string) *RabbitMQEventEmitter {
	return &RabbitMQEventEmitter{pub: pub, exchange: exchange}
}

func (e *RabbitMQEventEmitter) Emit(ctx context.Context, event entities.ClaimEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.EventType, err)
	}

	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.Timestamp,
		Type:         string(event.EventType),
		Body:         body,
	}
	if err := e.pub.PublishWithContext(ctx, e.exchange, string(event.EventType), false, false, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", event.EventType, err)
	}
	return nil
}
