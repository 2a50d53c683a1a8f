package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"portfolio/api/internal/session"
)

// Scheduler periodically sweeps idle-expired sessions. Validation
// already rejects them lazily; the sweep only reclaims memory, so a
// backing that expires keys itself makes this a cheap no-op.
type Scheduler struct {
	cron     *cron.Cron
	sessions session.Store
	schedule string
	log      zerolog.Logger
}

func NewScheduler(sessions session.Store, schedule string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		sessions: sessions,
		schedule: schedule,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits briefly for an in-flight sweep.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("session sweep still running at shutdown")
	}
}

func (s *Scheduler) sweep() {
	removed, err := s.sessions.SweepExpired(context.Background())
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if removed > 0 {
		s.log.Debug().Int("removed", removed).Msg("swept expired sessions")
	}
}
