package indicator

// scorePERatio scores the price/earnings ratio, trailing first, forward as
// fallback. Lower is better; a missing or non-positive ratio cannot be read
// as cheap or expensive and scores Neutral.
func scorePERatio(src Source) float64 {
	q := src.Quote()
	if q == nil {
		return Neutral
	}
	pe := q.TrailingPE
	if pe == nil {
		pe = q.ForwardPE
	}
	if pe == nil || *pe <= 0 {
		return Neutral
	}
	switch {
	case *pe < 10:
		return 10.0
	case *pe < 15:
		return 9.0
	case *pe < 20:
		return 7.5
	case *pe < 25:
		return 6.0
	case *pe < 30:
		return 4.5
	case *pe < 40:
		return 3.0
	default:
		return 1.0
	}
}

// scorePEGRatio scores the price/earnings-to-growth ratio, lower is better.
func scorePEGRatio(src Source) float64 {
	q := src.Quote()
	if q == nil || q.PEGRatio == nil || *q.PEGRatio <= 0 {
		return Neutral
	}
	peg := *q.PEGRatio
	switch {
	case peg < 0.5:
		return 10.0
	case peg < 1.0:
		return 9.0
	case peg < 1.5:
		return 7.0
	case peg < 2.0:
		return 5.0
	case peg < 2.5:
		return 3.5
	default:
		return 1.5
	}
}

// scoreRevenueGrowth scores the year-over-year revenue growth rate.
func scoreRevenueGrowth(src Source) float64 {
	q := src.Quote()
	if q == nil || q.RevenueGrowth == nil {
		return Neutral
	}
	pct := *q.RevenueGrowth * 100
	switch {
	case pct > 30:
		return 10.0
	case pct > 20:
		return 9.0
	case pct > 15:
		return 8.0
	case pct > 10:
		return 7.0
	case pct > 5:
		return 6.0
	case pct > 0:
		return 5.0
	case pct > -5:
		return 3.5
	default:
		return 1.0
	}
}

// scoreProfitMargins scores the net profit margin.
func scoreProfitMargins(src Source) float64 {
	q := src.Quote()
	if q == nil || q.ProfitMargins == nil {
		return Neutral
	}
	pct := *q.ProfitMargins * 100
	switch {
	case pct > 25:
		return 10.0
	case pct > 20:
		return 9.0
	case pct > 15:
		return 8.0
	case pct > 10:
		return 7.0
	case pct > 5:
		return 6.0
	case pct > 0:
		return 5.0
	default:
		return 2.0
	}
}

// scoreOperatingMargin scores the operating margin.
func scoreOperatingMargin(src Source) float64 {
	q := src.Quote()
	if q == nil || q.OperatingMargins == nil {
		return Neutral
	}
	pct := *q.OperatingMargins * 100
	switch {
	case pct > 30:
		return 10.0
	case pct > 20:
		return 9.0
	case pct > 15:
		return 8.0
	case pct > 10:
		return 7.0
	case pct > 5:
		return 6.0
	case pct > 0:
		return 5.0
	default:
		return 2.5
	}
}

// scoreROE scores the return on equity.
func scoreROE(src Source) float64 {
	q := src.Quote()
	if q == nil || q.ReturnOnEquity == nil {
		return Neutral
	}
	pct := *q.ReturnOnEquity * 100
	switch {
	case pct > 25:
		return 10.0
	case pct > 20:
		return 9.0
	case pct > 15:
		return 8.0
	case pct > 10:
		return 7.0
	case pct > 5:
		return 6.0
	case pct > 0:
		return 5.0
	default:
		return 2.0
	}
}

// scoreROA scores the return on assets.
func scoreROA(src Source) float64 {
	q := src.Quote()
	if q == nil || q.ReturnOnAssets == nil {
		return Neutral
	}
	pct := *q.ReturnOnAssets * 100
	switch {
	case pct > 15:
		return 10.0
	case pct > 10:
		return 9.0
	case pct > 7:
		return 8.0
	case pct > 5:
		return 7.0
	case pct > 3:
		return 6.0
	case pct > 0:
		return 5.0
	default:
		return 2.0
	}
}

// scoreDebtToEquity scores the debt/equity ratio (expressed as a percentage
// by the provider). Lower leverage scores higher.
func scoreDebtToEquity(src Source) float64 {
	q := src.Quote()
	if q == nil || q.DebtToEquity == nil {
		return Neutral
	}
	de := *q.DebtToEquity
	switch {
	case de < 20:
		return 10.0
	case de < 40:
		return 9.0
	case de < 60:
		return 8.0
	case de < 80:
		return 7.0
	case de < 100:
		return 6.0
	case de < 150:
		return 4.5
	case de < 200:
		return 3.0
	default:
		return 1.5
	}
}

// scoreDebtToAssets scores total debt relative to total assets. Requires both
// fields present and nonzero assets.
func scoreDebtToAssets(src Source) float64 {
	q := src.Quote()
	if q == nil || q.TotalDebt == nil || q.TotalAssets == nil || *q.TotalAssets == 0 {
		return Neutral
	}
	pct := *q.TotalDebt / *q.TotalAssets * 100
	switch {
	case pct < 20:
		return 10.0
	case pct < 30:
		return 9.0
	case pct < 40:
		return 8.0
	case pct < 50:
		return 7.0
	case pct < 60:
		return 6.0
	case pct < 70:
		return 4.5
	default:
		return 2.5
	}
}

// scoreCurrentRatio scores short-term liquidity.
func scoreCurrentRatio(src Source) float64 {
	q := src.Quote()
	if q == nil || q.CurrentRatio == nil {
		return Neutral
	}
	cr := *q.CurrentRatio
	switch {
	case cr > 2.5:
		return 10.0
	case cr > 2.0:
		return 9.0
	case cr > 1.5:
		return 8.0
	case cr > 1.2:
		return 7.0
	case cr > 1.0:
		return 6.0
	case cr > 0.8:
		return 4.0
	default:
		return 2.0
	}
}

// scoreFreeCashFlow scores the absolute free cash flow in dollars.
func scoreFreeCashFlow(src Source) float64 {
	q := src.Quote()
	if q == nil || q.FreeCashflow == nil {
		return Neutral
	}
	fcf := *q.FreeCashflow
	switch {
	case fcf > 10_000_000_000:
		return 10.0
	case fcf > 5_000_000_000:
		return 9.0
	case fcf > 1_000_000_000:
		return 8.0
	case fcf > 500_000_000:
		return 7.0
	case fcf > 100_000_000:
		return 6.0
	case fcf > 0:
		return 5.0
	default:
		return 2.0
	}
}

// scorePriceToBook scores the price/book ratio, lower is better.
func scorePriceToBook(src Source) float64 {
	q := src.Quote()
	if q == nil || q.PriceToBook == nil || *q.PriceToBook <= 0 {
		return Neutral
	}
	pb := *q.PriceToBook
	switch {
	case pb < 1:
		return 10.0
	case pb < 1.5:
		return 9.0
	case pb < 2:
		return 8.0
	case pb < 3:
		return 7.0
	case pb < 4:
		return 6.0
	case pb < 5:
		return 4.5
	default:
		return 2.5
	}
}

// scoreBeta scores market-relative volatility; less volatile than the market
// scores higher.
func scoreBeta(src Source) float64 {
	q := src.Quote()
	if q == nil || q.Beta == nil {
		return Neutral
	}
	beta := *q.Beta
	switch {
	case beta < 0.5:
		return 10.0
	case beta < 0.8:
		return 9.0
	case beta < 1.0:
		return 8.0
	case beta < 1.2:
		return 7.0
	case beta < 1.5:
		return 6.0
	case beta < 2.0:
		return 4.0
	default:
		return 2.0
	}
}
