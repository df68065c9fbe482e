package impl

import (
	"context"
	"log/slog"
	"time"

	"atelier/config"
	"atelier/internal/domain/repository"
	"atelier/internal/observability"

	"go.uber.org/fx"
)

const defaultSweepInterval = time.Hour

// Sweeper periodically deletes expired refresh sessions and dead password
// recovery rows. Expired rows are already unusable, so the job changes no
// behavior; it only bounds table growth.
type Sweeper struct {
	sessionRepo  repository.SessionRepository
	recoveryRepo repository.RecoveryRepository
	metrics      *observability.Metrics
	interval     time.Duration
	enabled      bool
	logger       *slog.Logger
	cancel       context.CancelFunc
	done         chan struct{}
}

// SweeperParams holds dependencies for the Sweeper, injected by Fx.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo  repository.SessionRepository
	RecoveryRepo repository.RecoveryRepository
	Metrics      *observability.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSweeper creates the sweeper and registers its lifecycle hooks.
func NewSweeper(params SweeperParams) *Sweeper {
	interval := defaultSweepInterval
	enabled := true
	if params.Config != nil && params.Config.Sweeper != nil {
		enabled = params.Config.Sweeper.Enabled
		if params.Config.Sweeper.Interval > 0 {
			interval = params.Config.Sweeper.Interval
		}
	}

	s := &Sweeper{
		sessionRepo:  params.SessionRepo,
		recoveryRepo: params.RecoveryRepo,
		metrics:      params.Metrics,
		interval:     interval,
		enabled:      enabled,
		logger:       params.Logger,
		done:         make(chan struct{}),
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !s.enabled {
				s.logger.Info("Auth row sweeper disabled")

				return nil
			}

			runCtx, cancel := context.WithCancel(context.Background())
			s.cancel = cancel
			go s.run(runCtx)
			s.logger.Info("Auth row sweeper started", slog.Duration("interval", s.interval))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if s.cancel != nil {
				s.cancel()
				<-s.done
			}

			return nil
		},
	})

	return s
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

// sweepOnce deletes everything currently dead. The two deletes are
// independent; a failure in one never blocks the other.
func (s *Sweeper) sweepOnce(ctx context.Context) {
	now := time.Now()

	sessions, err := s.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("Failed to sweep expired refresh sessions", slog.Any("error", err))
	}

	recoveries, err := s.recoveryRepo.DeleteDead(ctx, now)
	if err != nil {
		s.logger.Error("Failed to sweep dead password recoveries", slog.Any("error", err))
	}

	s.metrics.RecordSweep(sessions, recoveries)
	if sessions > 0 || recoveries > 0 {
		s.logger.Info("Swept dead auth rows",
			slog.Int64("refreshSessions", sessions),
			slog.Int64("passwordRecoveries", recoveries),
		)
	}
}
