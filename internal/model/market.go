package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Dividend is a single cash dividend event.
type Dividend struct {
	Time   time.Time
	Amount float64
}
