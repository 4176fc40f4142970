package indicator

import (
	"math"

	"StockScout/internal/model"
	"StockScout/internal/provider"
)

const rsiPeriod = 14

// windowPerformance returns the percent price change between the first and
// last closes of the window.
func windowPerformance(bars []model.OHLCV) (float64, bool) {
	if len(bars) < 2 {
		return 0, false
	}
	first := bars[0].Close
	if first == 0 {
		return 0, false
	}
	return (bars[len(bars)-1].Close - first) / first * 100, true
}

// scoreMomentum6M scores the 6-month price performance.
func scoreMomentum6M(src Source) float64 {
	perf, ok := windowPerformance(src.History(provider.Period6M))
	if !ok {
		return Neutral
	}
	switch {
	case perf > 30:
		return 10.0
	case perf > 20:
		return 9.0
	case perf > 15:
		return 8.0
	case perf > 10:
		return 7.0
	case perf > 5:
		return 6.0
	case perf > 0:
		return 5.5
	case perf > -5:
		return 4.5
	case perf > -10:
		return 3.5
	case perf > -15:
		return 2.5
	default:
		return 1.0
	}
}

// scoreMomentum3M scores the 3-month price performance with tighter bands.
func scoreMomentum3M(src Source) float64 {
	perf, ok := windowPerformance(src.History(provider.Period3M))
	if !ok {
		return Neutral
	}
	switch {
	case perf > 20:
		return 10.0
	case perf > 15:
		return 9.0
	case perf > 10:
		return 8.0
	case perf > 5:
		return 7.0
	case perf > 2:
		return 6.0
	case perf > 0:
		return 5.5
	case perf > -5:
		return 4.0
	case perf > -10:
		return 3.0
	default:
		return 1.5
	}
}

// rollingRSI computes the RSI from the rolling mean of gains and losses over
// the last `period` close-to-close changes. Returns ok=false when the series
// is too short or has no movement at all (the 0/0 case).
func rollingRSI(bars []model.OHLCV, period int) (float64, bool) {
	if len(bars) < period+1 {
		return 0, false
	}
	var avgGain, avgLoss float64
	for i := len(bars) - period; i < len(bars); i++ {
		change := bars[i].Close - bars[i-1].Close
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			return 0, false
		}
		return 100, true
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), true
}

// scoreRSI scores the 14-day RSI with a contrarian policy: oversold (<30) is
// treated as a potential rebound and scores high, overbought (>70) scores
// toward zero. This intentionally inverts trend-following intuition.
func scoreRSI(src Source) float64 {
	rsi, ok := rollingRSI(src.History(provider.Period3M), rsiPeriod)
	if !ok {
		return Neutral
	}
	switch {
	case rsi < 30:
		return 9.0 + (30-rsi)/30
	case rsi < 40:
		return 7.0 + (40-rsi)/10*2
	case rsi < 50:
		return 6.0 + (50-rsi)/10
	case rsi < 60:
		return 5.0
	case rsi < 70:
		return 4.0 - (rsi-60)/10
	default:
		return math.Max(0, 3.0-(rsi-70)/10)
	}
}

func averageVolume(bars []model.OHLCV) float64 {
	if len(bars) == 0 {
		return 0
	}
	var sum float64
	for _, b := range bars {
		sum += b.Volume
	}
	return sum / float64(len(bars))
}

// scoreVolumeTrend compares the recent 10-bar average volume against the
// prior 20-bar average.
func scoreVolumeTrend(src Source) float64 {
	bars := src.History(provider.Period3M)
	if len(bars) < 20 {
		return Neutral
	}
	n := len(bars)
	start := n - 30
	if start < 0 {
		start = 0
	}
	avgRecent := averageVolume(bars[n-10:])
	avgOld := averageVolume(bars[start : n-10])
	if avgOld == 0 {
		return Neutral
	}

	change := (avgRecent - avgOld) / avgOld * 100
	switch {
	case change > 50:
		return 9.0
	case change > 30:
		return 8.0
	case change > 15:
		return 7.0
	case change > 0:
		return 6.0
	case change > -15:
		return 5.0
	case change > -30:
		return 4.0
	default:
		return 3.0
	}
}
