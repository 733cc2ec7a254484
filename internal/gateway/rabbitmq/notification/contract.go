package notification

import "dinner-service/internal/pkg/rabbitmq"

type connection interface {
	Channel() (rabbitmq.Channel, error)
}
