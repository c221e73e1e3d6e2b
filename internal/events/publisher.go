package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

const (
	ExchangeName = "order_events"
	ExchangeType = "topic"

	routingKeyCreated       = "order.created"
	routingKeyStatusChanged = "order.status_changed"
)

// AMQPChannel is the slice of amqp.Channel the publisher uses; tests swap in
// a fake.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// orderMessage is the wire form of both lifecycle events. PreviousStatus is
// empty for order.created.
type orderMessage struct {
	OrderID        string    `json:"order_id"`
	CustomerID     string    `json:"customer_id"`
	RestaurantID   string    `json:"restaurant_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Total          int64     `json:"total"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher sends order lifecycle messages to the order_events exchange so
// downstream consumers (kitchen displays, notifiers) can react. Publishing is
// best-effort: failures are logged, never propagated into the order flow.
type Publisher struct {
	ch     AMQPChannel
	logger *log.Logger
}

func NewPublisher(ch AMQPChannel, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{ch: ch, logger: logger}
}

// Connect dials RabbitMQ, declares the exchange and returns a ready
// publisher plus the connection for the caller to close on shutdown.
func Connect(url string, logger *log.Logger) (*Publisher, *amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		ExchangeName,
		ExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}

	return NewPublisher(ch, logger), conn, nil
}

func (p *Publisher) OrderCreated(ctx context.Context, order domain.Order) {
	p.publish(ctx, routingKeyCreated, orderMessage{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       string(order.Status),
		Total:        order.Total,
		OccurredAt:   order.CreatedDate,
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus) {
	p.publish(ctx, routingKeyStatusChanged, orderMessage{
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		RestaurantID:   order.RestaurantID,
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		Total:          order.Total,
		OccurredAt:     order.UpdatedDate,
	})
}

func (p *Publisher) publish(ctx context.Context, key string, msg orderMessage) {
	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Printf("WARN: marshal %s event for order %s: %v", key, msg.OrderID, err)
		return
	}
	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Printf("WARN: publish %s event for order %s: %v", key, msg.OrderID, err)
	}
}
