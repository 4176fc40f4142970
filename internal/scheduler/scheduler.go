package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockScout/internal/model"
	"StockScout/internal/rank"
	"StockScout/internal/recorder"
)

// Scheduler runs periodic watchlist scans.
type Scheduler struct {
	Cron     *cron.Cron
	Ranker   *rank.Ranker
	Recorder recorder.Recorder
	Symbols  []string
	Horizon  model.Horizon
	Ctx      context.Context

	log zerolog.Logger
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, ranker *rank.Ranker, rec recorder.Recorder, symbols []string, horizon model.Horizon) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Ranker:   ranker,
		Recorder: rec,
		Symbols:  symbols,
		Horizon:  horizon,
		Ctx:      ctx,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Register wires the scan task to its cron expression.
func (s *Scheduler) Register(scanCron string) error {
	_, err := s.Cron.AddFunc(scanCron, s.runScan)
	return err
}

func (s *Scheduler) Start() { s.Cron.Start() }
func (s *Scheduler) Stop()  { s.Cron.Stop() }

// RunScanNow executes the watchlist scan immediately.
func (s *Scheduler) RunScanNow() { s.runScan() }

func (s *Scheduler) runScan() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}

	s.log.Info().Int("symbols", len(s.Symbols)).Str("horizon", string(s.Horizon)).
		Msg("watchlist scan starting")

	entries := s.Ranker.Rank(s.Symbols, s.Horizon)
	for i, e := range entries {
		s.log.Info().
			Int("rank", i+1).
			Str("ticker", e.Ticker).
			Str("sector", e.Sector).
			Float64("score", e.FinalScore).
			Str("verdict", e.Verdict).
			Msg("watchlist entry")

		if err := s.Recorder.RecordScore(e.Result); err != nil {
			s.log.Error().Err(err).Str("ticker", e.Ticker).Msg("record score failed")
		}
	}

	s.log.Info().Int("scored", len(entries)).Msg("watchlist scan finished")
}
