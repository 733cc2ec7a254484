//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_receive_post_test
package inventory_receive_post

import (
	"context"

	"dinner-service/internal/entities"
	"dinner-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ReceiveOrdered(ctx context.Context, menuItemID int64) (*entities.InventoryItem, error)
}
