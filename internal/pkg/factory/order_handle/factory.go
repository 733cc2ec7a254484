package order_handle

import (
	"context"
	"fmt"

	"dinner-service/internal/entities"
	"dinner-service/internal/service/inventory"
)

type ReservationStore interface {
	MarkConsumedByOrder(ctx context.Context, orderID int64) (int64, error)
	DeleteUnconsumedByOrder(ctx context.Context, orderID int64) (int64, error)
}

// StatusHandlerFactory как склад реагирует на статус заказа
type StatusHandlerFactory struct {
	store ReservationStore
}

func NewStatusHandlerFactory(store ReservationStore) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		store: store,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (inventory.ExecuteFn, error) {
	switch status {
	case entities.OrderCooking, entities.OrderReady, entities.OrderOutForDelivery, entities.OrderDelivered:
		return f.consumeHandler, nil
	case entities.OrderCancelled:
		return f.releaseHandler, nil
	case entities.OrderPending:
	}
	return nil, fmt.Errorf("%w: %s", inventory.ErrIgnoredStatus, status)
}

// consumeHandler кухня начала готовить, резервы списаны
func (f *StatusHandlerFactory) consumeHandler(ctx context.Context, orderID int64) (int64, error) {
	affected, err := f.store.MarkConsumedByOrder(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("consume reservations for order %d: %w", orderID, err)
	}
	return affected, nil
}

func (f *StatusHandlerFactory) releaseHandler(ctx context.Context, orderID int64) (int64, error) {
	affected, err := f.store.DeleteUnconsumedByOrder(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("release reservations for cancelled order %d: %w", orderID, err)
	}
	return affected, nil
}
