package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"CandleView/internal/chart"
	"CandleView/internal/collector"
	"CandleView/internal/recorder"
)

// Scheduler rebuilds the cached chart on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Cache     *chart.Cache
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, cache *chart.Cache, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Cache:     cache,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register adds the refresh task under refreshCron.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RefreshNow rebuilds the chart immediately. On failure the previous cached
// chart is kept.
func (s *Scheduler) RefreshNow() error {
	started := time.Now()
	evt := &recorder.BuildEvent{
		ID:      uuid.NewString(),
		Kind:    recorder.KindCandlestick,
		Source:  s.Collector.Fetcher.Name(),
		Windows: s.Collector.Windows,
	}

	res, err := s.Collector.BuildChart(s.Ctx)
	evt.Duration = time.Since(started)
	if err != nil {
		evt.Err = err.Error()
	} else {
		evt.Records = res.Records
		s.Cache.Set(res.Option)
	}

	if recErr := s.Recorder.RecordBuild(evt); recErr != nil {
		log.Error().Err(recErr).Msg("record build")
	}
	return err
}

func (s *Scheduler) refreshTask() {
	log.Info().Msg("refreshing chart")
	if err := s.RefreshNow(); err != nil {
		log.Error().Err(err).Msg("chart refresh")
		return
	}
	log.Info().Msg("chart refreshed")
}
