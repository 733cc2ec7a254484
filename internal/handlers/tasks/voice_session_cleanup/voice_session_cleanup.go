package voice_session_cleanup

import (
	"context"
	"time"

	"dinner-service/internal/pkg/metrics"
	"dinner-service/pkg/logger"
)

type VoiceSessionCleanup struct {
	log      taskLogger
	service  Service
	sessions SessionCounter
	interval time.Duration
}

func NewVoiceSessionCleanup(log taskLogger, service Service, sessions SessionCounter, interval time.Duration) *VoiceSessionCleanup {
	return &VoiceSessionCleanup{
		log:      log,
		service:  service,
		sessions: sessions,
		interval: interval,
	}
}

func (v *VoiceSessionCleanup) TTL() time.Duration {
	return v.interval
}

// Do вытесняет сессии без активности и обновляет gauge живых сессий
func (v *VoiceSessionCleanup) Do(ctx context.Context) error {
	evicted, err := v.service.EvictIdle(ctx, time.Now())

	if evicted > 0 {
		v.log.With(
			logger.NewField("evicted_sessions", evicted),
		).Info("voice session cleanup")
	}
	metrics.VoiceSessionsActive.Set(float64(v.sessions.Len()))

	return err
}

func (v *VoiceSessionCleanup) Info() string {
	return "voice session cleanup"
}
