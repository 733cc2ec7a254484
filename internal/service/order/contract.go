//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/pkg/logger"
)

type DinnerGateway interface {
	ListOrders(ctx context.Context, session entities.Session) ([]entities.Order, error)
	GetOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.Order, error)
	CancelOrder(ctx context.Context, session entities.Session, orderID int64) error
	ListChangeRequests(ctx context.Context, session entities.Session, orderID int64) ([]entities.ChangeRequest, error)
	CreateChangeRequest(ctx context.Context, session entities.Session, modify entities.ChangeRequestModify) (*entities.ChangeRequest, error)
}

type Engine interface {
	ModificationWindow(order entities.Order, now time.Time) entities.ModificationWindow
	CanModify(order entities.Order, now time.Time) bool
	CanCancel(order entities.Order) bool
	QuoteCancellation(order entities.Order, now time.Time) (entities.CancellationQuote, error)
	Evaluate(order entities.Order, now time.Time) (entities.Eligibility, error)
	PendingApprovalCount(orders []entities.Order) int
}

type Notifier interface {
	NotifyCancelled(ctx context.Context, order entities.Order, quote entities.CancellationQuote, at time.Time) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
