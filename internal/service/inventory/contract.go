//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"
	"time"

	"dinner-service/internal/entities"
)

type Repository interface {
	ListItems(ctx context.Context) ([]entities.InventoryItem, error)
	GetItem(ctx context.Context, menuItemID int64) (*entities.InventoryItem, error)
	GetItemForUpdate(ctx context.Context, menuItemID int64) (*entities.InventoryItem, error)
	UpdateItem(ctx context.Context, modify entities.InventoryModify) (*entities.InventoryItem, error)

	SumReservedByWindow(ctx context.Context, windowStart time.Time, menuItemIDs []int64) (map[int64]int, error)
	SumUnconsumedByDeliveryRange(ctx context.Context, from, to time.Time) (map[int64]int, error)
	SumUnconsumedByDate(ctx context.Context, from, to time.Time, location *time.Location) (map[int64]map[string]int, error)

	CreateReservations(ctx context.Context, reservations []entities.Reservation) ([]entities.Reservation, error)
	DeleteExpiredUnconsumed(ctx context.Context, now time.Time) (int64, error)
}

type WindowFactory interface {
	Location() *time.Location
	WeekStart(t time.Time) time.Time
	WindowFor(t time.Time) entities.InventoryWindow
	WindowFrom(date time.Time) entities.InventoryWindow
	Days(window entities.InventoryWindow) []time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	ExecuteFn      func(ctx context.Context, orderID int64) (int64, error)
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
