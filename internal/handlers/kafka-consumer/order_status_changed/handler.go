package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/service/inventory"
	"dinner-service/pkg/logger"

	"github.com/IBM/sarama"
)

type statusChangedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type Handler struct {
	inventoryService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, inventoryService Service, timeout time.Duration) *Handler {
	return &Handler{
		inventoryService:         inventoryService,
		log:                      log.With(logger.NewField("handler", "order_status_changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if retry := h.HandleMessage(sess.Context(), message); retry {
				// offset не коммитим, сообщение придёт снова после ребаланса
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// HandleMessage возвращает true, если сообщение нужно перечитать (контекст отменён).
// Битые сообщения и неизвестные статусы пропускаются, иначе партиция встанет.
func (h *Handler) HandleMessage(ctx context.Context, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	status, err := entities.ParseOrderStatus(event.Status)
	if err != nil {
		msgLog.With(logger.NewField("error", err)).Warn("order.status.changed handler unknown status for order")
		return false
	}

	affected, err := h.inventoryService.ApplyOrderStatus(ctx, entities.OrderStatusEvent{
		OrderID: event.OrderID,
		Status:  status,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, inventory.ErrInvalidOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler invalid order id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.status.changed handler failed to apply status")
		}
		return false
	}

	msgLog.With(logger.NewField("reservations_affected", affected)).Info("order.status.changed: processed")
	return false
}
