package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/vidhub/internal/models"
)

// Publisher — часть amqp.Channel, нужная для публикации.
type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// PublishMessage сериализует message в JSON и публикует его как persistent-сообщение.
func PublishMessage(ch Publisher, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// EventPublisher публикует доменные события пользователей в exchange.
type EventPublisher struct {
	mu       sync.Mutex
	ch       Publisher
	exchange string
}

// NewEventPublisher создаёт издателя поверх канала.
func NewEventPublisher(ch Publisher, exchange string) *EventPublisher {
	return &EventPublisher{ch: ch, exchange: exchange}
}

// UserRegistered публикует событие регистрации пользователя.
func (p *EventPublisher) UserRegistered(ctx context.Context, event models.UserRegisteredEvent) error {
	const op = "rabbitmq.UserRegistered"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := PublishMessage(p.ch, p.exchange, RoutingKeyUserRegistered, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
