//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_test
package voice

import (
	"context"
	"time"

	"dinner-service/internal/entities"
)

type DinnerGateway interface {
	GetProfile(ctx context.Context, session entities.Session) (*entities.Profile, error)
	CreateOrder(ctx context.Context, session entities.Session, order entities.OrderCreate) (*entities.OrderCreated, error)
}

// SessionStore fn в Update выполняется под блокировкой конкретной сессии
type SessionStore interface {
	Create(ctx context.Context, session entities.VoiceSession) error
	Get(ctx context.Context, id string) (*entities.VoiceSession, error)
	Update(ctx context.Context, id string, fn func(session *entities.VoiceSession) error) (*entities.VoiceSession, error)
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int, error)
}
