package indicator

const dividendWindow = 252 // trailing dividend events compared year-over-year

// scoreDividendYield scores the dividend yield. A zero or missing yield is
// Neutral, not penalized: non-dividend sectors stay comparable with
// dividend-heavy ones.
func scoreDividendYield(src Source) float64 {
	q := src.Quote()
	if q == nil || q.DividendYield == nil || *q.DividendYield == 0 {
		return Neutral
	}
	pct := *q.DividendYield * 100
	switch {
	case pct > 5:
		return 10.0
	case pct > 4:
		return 9.0
	case pct > 3:
		return 8.0
	case pct > 2:
		return 7.0
	case pct > 1:
		return 6.0
	default:
		return 5.0
	}
}

// scoreDividendGrowth compares the trailing 252 dividend events against the
// prior 252. The window arithmetic assumes roughly daily event granularity
// and is a known approximation for quarterly or annual payers.
func scoreDividendGrowth(src Source) float64 {
	divs := src.Dividends()
	if len(divs) < 2 {
		return Neutral
	}

	n := len(divs)
	recentStart := n - dividendWindow
	if recentStart < 0 {
		recentStart = 0
	}
	var recent float64
	for _, d := range divs[recentStart:] {
		recent += d.Amount
	}

	var old float64
	if n >= 2*dividendWindow {
		for _, d := range divs[n-2*dividendWindow : n-dividendWindow] {
			old += d.Amount
		}
	}
	if old == 0 {
		return Neutral
	}

	growth := (recent - old) / old * 100
	switch {
	case growth > 15:
		return 10.0
	case growth > 10:
		return 9.0
	case growth > 7:
		return 8.0
	case growth > 5:
		return 7.0
	case growth > 3:
		return 6.0
	case growth > 0:
		return 5.5
	default:
		return 3.0
	}
}
