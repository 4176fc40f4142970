// Package engine orchestrates one scoring run: fetch the data snapshot,
// select the weight profile, invoke every indicator in the profile, and
// aggregate the weighted result on the 0-100 scale.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockScout/internal/indicator"
	"StockScout/internal/model"
	"StockScout/internal/provider"
	"StockScout/internal/weights"
)

// ErrTickerNotFound is returned when the provider has no usable
// classification or pricing data for a symbol.
var ErrTickerNotFound = errors.New("ticker not found")

// Engine scores tickers against the sector weight policy.
type Engine struct {
	provider provider.Provider
	log      zerolog.Logger
}

// New creates an Engine backed by the given market-data provider.
func New(p provider.Provider) *Engine {
	return &Engine{
		provider: p,
		log:      log.With().Str("component", "engine").Logger(),
	}
}

// dataset implements indicator.Source over the provider with one fetch per
// period per run. Failed fetches are remembered as empty so a single provider
// outage degrades the affected indicators to neutral instead of refetching.
type dataset struct {
	provider  provider.Provider
	symbol    string
	quote     *model.RawFinancials
	history   map[string][]model.OHLCV
	dividends []model.Dividend
	divLoaded bool
	log       zerolog.Logger
}

func newDataset(p provider.Provider, symbol string, quote *model.RawFinancials, logger zerolog.Logger) *dataset {
	return &dataset{
		provider: p,
		symbol:   symbol,
		quote:    quote,
		history:  make(map[string][]model.OHLCV),
		log:      logger,
	}
}

func (d *dataset) Quote() *model.RawFinancials { return d.quote }

func (d *dataset) History(period string) []model.OHLCV {
	if bars, ok := d.history[period]; ok {
		return bars
	}
	bars, err := d.provider.FetchHistory(d.symbol, period)
	if err != nil {
		d.log.Warn().Err(err).Str("symbol", d.symbol).Str("period", period).
			Msg("history fetch failed, dependent indicators score neutral")
		bars = nil
	}
	d.history[period] = bars
	return bars
}

func (d *dataset) Dividends() []model.Dividend {
	if d.divLoaded {
		return d.dividends
	}
	divs, err := d.provider.FetchDividends(d.symbol)
	if err != nil {
		d.log.Warn().Err(err).Str("symbol", d.symbol).
			Msg("dividend fetch failed, dividend growth scores neutral")
		divs = nil
	}
	d.dividends = divs
	d.divLoaded = true
	return divs
}

// Score runs a full scoring pass for one ticker and horizon. A single
// indicator failing degrades that indicator to neutral and never aborts the
// run; only total absence of classification and pricing data is a hard
// ErrTickerNotFound.
func (e *Engine) Score(ticker string, horizon model.Horizon) (*model.ScoreResult, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrTickerNotFound)
	}

	quote, err := e.provider.FetchQuote(symbol)
	if err != nil {
		e.log.Debug().Err(err).Str("symbol", symbol).Msg("quote fetch failed")
		return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, symbol)
	}

	sector := quote.Sector
	if sector == "" {
		sector = "Unknown"
	}
	if quote.Sector == "" && quote.CurrentPrice == nil {
		return nil, fmt.Errorf("%w: no usable data for %s", ErrTickerNotFound, symbol)
	}

	profile := weights.Lookup(sector, horizon)
	ds := newDataset(e.provider, symbol, quote, e.log)

	breakdown := make(map[string]model.IndicatorScore, len(profile))
	var weightedSum, totalWeight float64
	for _, wi := range profile {
		value := indicator.Score(wi.Indicator, ds)
		breakdown[wi.Indicator] = model.IndicatorScore{Name: wi.Indicator, Value: value}
		weightedSum += value * wi.Weight
		totalWeight += wi.Weight
	}

	var final float64
	if totalWeight > 0 {
		final = math.Round(weightedSum/totalWeight*10*100) / 100
	}

	e.log.Info().Str("symbol", symbol).Str("sector", sector).
		Str("horizon", string(horizon)).Float64("score", final).Msg("scored")

	return &model.ScoreResult{
		Ticker:     symbol,
		Company:    quote.CompanyName(),
		Sector:     sector,
		Industry:   quote.Industry,
		Horizon:    horizon,
		FinalScore: final,
		Breakdown:  breakdown,
		Profile:    profile,
		Financials: quote,
	}, nil
}
