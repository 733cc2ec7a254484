package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dinner-service/internal/entities"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "fanout"

type Publisher struct {
	conn     connection
	exchange string
}

func New(conn connection, exchange string) *Publisher {
	return &Publisher{
		conn:     conn,
		exchange: exchange,
	}
}

// NotifyCancelled публикует уведомление об отмене заказа в fanout exchange
func (p *Publisher) NotifyCancelled(ctx context.Context, order entities.Order, quote entities.CancellationQuote, at time.Time) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("notification, open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("notification, declare exchange %s: %w", p.exchange, err)
	}

	body, err := json.Marshal(cancellationMessage{
		OrderID:            order.ID,
		Status:             entities.OrderCancelled.String(),
		DeliveryTime:       order.DeliveryTime,
		TotalPrice:         order.TotalPrice,
		CancelFee:          quote.Fee,
		RefundAmount:       quote.Refund,
		DaysUntilDelivery:  quote.DaysUntilDelivery,
		PreparationStarted: quote.PreparationStarted,
		CancelledAt:        at,
	})
	if err != nil {
		return fmt.Errorf("notification, marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    at,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("notification, publish order %d: %w", order.ID, err)
	}
	return nil
}

// Noop используется когда RABBITMQ_URL не задан
type Noop struct{}

func (Noop) NotifyCancelled(context.Context, entities.Order, entities.CancellationQuote, time.Time) error {
	return nil
}
