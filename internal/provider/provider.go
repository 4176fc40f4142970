package provider

import "StockScout/internal/model"

// History periods accepted by FetchHistory.
const (
	Period1W  = "1wk"
	Period1M  = "1mo"
	Period3M  = "3mo"
	Period6M  = "6mo"
	Period1Y  = "1y"
	PeriodYTD = "ytd"
	Period5Y  = "5y"
	PeriodMax = "max"
)

// Provider defines the interface to the external market-data source.
// Implementations never retry; callers decide how to react to failures.
type Provider interface {
	FetchQuote(symbol string) (*model.RawFinancials, error)
	FetchHistory(symbol, period string) ([]model.OHLCV, error)
	FetchDividends(symbol string) ([]model.Dividend, error)
	Name() string
}
