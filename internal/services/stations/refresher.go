package stations

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

const refreshTimeout = 30 * time.Second

type refreshable interface {
	Refresh(ctx context.Context) ([]models.Station, error)
}

// Refresher re-warms the station snapshot cache on a schedule so live
// availability stays close to the feed without hitting it per request.
type Refresher struct {
	source refreshable
	logger zerolog.Logger
	cron   *cron.Cron
	spec   string
	cancel context.CancelFunc
}

func NewRefresher(source refreshable, logger zerolog.Logger, spec string) *Refresher {
	logger = logger.With().Str("component", "StationRefresher").Logger()
	return &Refresher{
		source: source,
		logger: logger,
		cron:   cron.New(),
		spec:   spec,
	}
}

// Start schedules the refresh job and runs one refresh immediately so the
// first request never sees an empty cache.
func (r *Refresher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	if _, err := r.cron.AddFunc(r.spec, func() { r.run(ctx) }); err != nil {
		r.logger.Error().Err(err).Str("spec", r.spec).Msg("failed to schedule station refresh")
		cancel()
		return err
	}

	go r.run(ctx)

	r.cron.Start()
	r.logger.Info().Str("spec", r.spec).Msg("station refresher started")
	return nil
}

// Stop cancels the schedule and waits for a running job to finish.
func (r *Refresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	stopCtx := r.cron.Stop()
	<-stopCtx.Done()
	r.logger.Info().Msg("station refresher stopped")
}

func (r *Refresher) run(ctx context.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	all, err := r.source.Refresh(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("station snapshot refresh failed")
		return
	}
	r.logger.Info().
		Int("stations", len(all)).
		Dur("duration", time.Since(start)).
		Msg("station snapshot refreshed")
}
