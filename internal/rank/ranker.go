// Package rank scores a watchlist of symbols and produces a descending
// leaderboard with a verdict per entry.
package rank

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockScout/internal/engine"
	"StockScout/internal/model"
)

// Verdict labels, split at the 70/40 final-score thresholds.
const (
	VerdictBuy     = "BUY"
	VerdictCaution = "CAUTION"
	VerdictAvoid   = "AVOID"
)

// Verdict maps a 0-100 final score to its display verdict.
func Verdict(score float64) string {
	switch {
	case score >= 70:
		return VerdictBuy
	case score >= 40:
		return VerdictCaution
	default:
		return VerdictAvoid
	}
}

// Entry is one scored watchlist row.
type Entry struct {
	Ticker     string
	Company    string
	Sector     string
	FinalScore float64
	Verdict    string
	Result     *model.ScoreResult
}

// Ranker scores symbol lists through the engine.
type Ranker struct {
	engine *engine.Engine
	log    zerolog.Logger
}

// New creates a Ranker.
func New(e *engine.Engine) *Ranker {
	return &Ranker{
		engine: e,
		log:    log.With().Str("component", "ranker").Logger(),
	}
}

// Rank scores every symbol and returns entries sorted by descending final
// score. Symbols the provider does not know are skipped with a warning.
func (r *Ranker) Rank(symbols []string, horizon model.Horizon) []Entry {
	entries := make([]Entry, 0, len(symbols))
	for _, symbol := range symbols {
		result, err := r.engine.Score(symbol, horizon)
		if err != nil {
			r.log.Warn().Err(err).Str("symbol", symbol).Msg("skipping unscorable symbol")
			continue
		}
		entries = append(entries, Entry{
			Ticker:     result.Ticker,
			Company:    result.Company,
			Sector:     result.Sector,
			FinalScore: result.FinalScore,
			Verdict:    Verdict(result.FinalScore),
			Result:     result,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].FinalScore > entries[j].FinalScore
	})
	return entries
}
