//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_only_test
package admin_only

import (
	"context"

	"dinner-service/internal/entities"
	"dinner-service/pkg/logger"
)

type ProfileGateway interface {
	GetProfile(ctx context.Context, session entities.Session) (*entities.Profile, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
