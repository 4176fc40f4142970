package provider

import (
	"errors"

	"StockScout/internal/model"
)

// ErrNoData is returned by MockProvider for any call without a configured hook.
var ErrNoData = errors.New("mock provider: no data")

// MockProvider returns controllable data for development and testing. Any nil
// hook behaves as an unavailable provider for that call.
type MockProvider struct {
	QuoteFn     func(symbol string) (*model.RawFinancials, error)
	HistoryFn   func(symbol, period string) ([]model.OHLCV, error)
	DividendsFn func(symbol string) ([]model.Dividend, error)
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchQuote(symbol string) (*model.RawFinancials, error) {
	if m.QuoteFn == nil {
		return nil, ErrNoData
	}
	return m.QuoteFn(symbol)
}

func (m *MockProvider) FetchHistory(symbol, period string) ([]model.OHLCV, error) {
	if m.HistoryFn == nil {
		return nil, ErrNoData
	}
	return m.HistoryFn(symbol, period)
}

func (m *MockProvider) FetchDividends(symbol string) ([]model.Dividend, error) {
	if m.DividendsFn == nil {
		return nil, ErrNoData
	}
	return m.DividendsFn(symbol)
}
