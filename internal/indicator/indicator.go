// Package indicator maps single raw financial metrics and derived price-series
// statistics onto a 0-10 score using hand-tuned banded policies.
//
// Every indicator degrades to the neutral score when its input is missing,
// non-numeric, or non-positive where positivity is required. Insufficient data
// must neither penalize nor reward a ticker, so sparse-data symbols still
// aggregate to a usable final score.
package indicator

import "StockScout/internal/model"

// Neutral is the designed "don't know" score.
const Neutral = 5.0

// Source supplies the raw data indicators score against. Implementations may
// fetch lazily; a Source that cannot supply a value returns nil or an empty
// slice and the indicator scores Neutral.
type Source interface {
	Quote() *model.RawFinancials
	History(period string) []model.OHLCV
	Dividends() []model.Dividend
}

// Func scores one metric on the 0-10 scale.
type Func func(src Source) float64

// Names of all library indicators, as referenced by weight profiles.
const (
	Momentum6M      = "Momentum 6M"
	Momentum3M      = "Momentum 3M"
	RSI             = "RSI"
	VolumeTrend     = "Volume"
	PERatio         = "P/E Ratio"
	PEGRatio        = "PEG Ratio"
	RevenueGrowth   = "Revenue Growth"
	ProfitMargins   = "Profit Margins"
	OperatingMargin = "Operating Margin"
	ROE             = "ROE"
	ROA             = "ROA"
	DebtToEquity    = "Debt/Equity"
	DebtToAssets    = "Debt/Assets"
	CurrentRatio    = "Current Ratio"
	FreeCashFlow    = "Free Cash Flow"
	DividendYield   = "Dividend Yield"
	DividendGrowth  = "Dividend Growth"
	PriceToBook     = "Price/Book"
	Beta            = "Beta"
)

var library = map[string]Func{
	Momentum6M:      scoreMomentum6M,
	Momentum3M:      scoreMomentum3M,
	RSI:             scoreRSI,
	VolumeTrend:     scoreVolumeTrend,
	PERatio:         scorePERatio,
	PEGRatio:        scorePEGRatio,
	RevenueGrowth:   scoreRevenueGrowth,
	ProfitMargins:   scoreProfitMargins,
	OperatingMargin: scoreOperatingMargin,
	ROE:             scoreROE,
	ROA:             scoreROA,
	DebtToEquity:    scoreDebtToEquity,
	DebtToAssets:    scoreDebtToAssets,
	CurrentRatio:    scoreCurrentRatio,
	FreeCashFlow:    scoreFreeCashFlow,
	DividendYield:   scoreDividendYield,
	DividendGrowth:  scoreDividendGrowth,
	PriceToBook:     scorePriceToBook,
	Beta:            scoreBeta,
}

// Known reports whether name is a library indicator.
func Known(name string) bool {
	_, ok := library[name]
	return ok
}

// Score runs the named indicator against src. Unknown names score Neutral.
func Score(name string, src Source) float64 {
	fn, ok := library[name]
	if !ok {
		return Neutral
	}
	return clamp10(fn(src))
}

func clamp10(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
