//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_reservation_post_test
package inventory_reservation_post

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
	Reserve(ctx context.Context, request entities.ReservationRequest) ([]entities.Reservation, error)
}
