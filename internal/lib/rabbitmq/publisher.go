package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

// Channel описывает часть amqp.Channel, нужную для публикации.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// PublishMessage публикует сообщение в RabbitMQ в формате JSON.
func PublishMessage(ch Channel, exchange string, routingkey string, message any) error {
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
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Publisher публикует события в один обменник. amqp.Channel не
// потокобезопасен для публикации, поэтому вызовы сериализуются.
type Publisher struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
	closers  []func() error
}

// NewPublisher создаёт Publisher поверх открытого соединения.
func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	ch, err := SetupExchange(conn, exchange)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		closers:  []func() error{ch.Close, conn.Close},
	}, nil
}

// NewChannelPublisher создаёт Publisher поверх произвольного канала.
func NewChannelPublisher(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

// Publish отправляет событие с ключом маршрутизации routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rabbitmq.Publish: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return PublishMessage(p.ch, p.exchange, routingKey, event)
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	var firstErr error
	for _, c := range p.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Nop отбрасывает события. Используется, когда RabbitMQ не настроен.
type Nop struct{}

// Publish ничего не делает.
func (Nop) Publish(context.Context, string, any) error { return nil }
