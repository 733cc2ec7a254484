package reservation_cleanup

import (
	"context"
	"time"

	"dinner-service/pkg/logger"
)

// ReservationCleanup удаляет несписанные резервы, у которых прошло время доставки
type ReservationCleanup struct {
	log      taskLogger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewReservationCleanup(log taskLogger, service Service, interval time.Duration) *ReservationCleanup {
	return &ReservationCleanup{
		log:      log,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

func (r *ReservationCleanup) TTL() time.Duration {
	return r.interval
}

func (r *ReservationCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	released, err := r.service.ReleaseExpired(ctxWithTimeout, r.now())

	if released > 0 {
		r.log.With(
			logger.NewField("released_reservations", released),
		).Info("reservation cleanup")
	}

	return err
}

func (r *ReservationCleanup) Info() string {
	return "reservation cleanup"
}
