// Package weights holds the sector- and horizon-specific indicator weightings.
// Different sectors are valued on fundamentally different axes: utilities and
// real estate lean on dividends, technology on growth and PEG, and every
// short-horizon profile leans on momentum and RSI. The policy is data, not
// code; the tables are initialized once and never mutated.
package weights

import (
	"StockScout/internal/indicator"
	"StockScout/internal/model"
)

type profileKey struct {
	Sector  string
	Horizon model.Horizon
}

// Sectors lists the recognized classification sectors. Any other sector
// string resolves to the default profile.
var Sectors = []string{
	"Technology",
	"Healthcare",
	"Financial Services",
	"Consumer Cyclical",
	"Consumer Defensive",
	"Energy",
	"Industrials",
	"Real Estate",
	"Utilities",
	"Basic Materials",
	"Communication Services",
}

var profiles = map[profileKey]model.WeightProfile{
	{"Technology", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.25},
		{Indicator: indicator.Momentum3M, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.RevenueGrowth, Weight: 0.15},
		{Indicator: indicator.VolumeTrend, Weight: 0.10},
		{Indicator: indicator.PERatio, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
	{"Technology", model.HorizonLong}: {
		{Indicator: indicator.RevenueGrowth, Weight: 0.20},
		{Indicator: indicator.PEGRatio, Weight: 0.20},
		{Indicator: indicator.ROE, Weight: 0.15},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.FreeCashFlow, Weight: 0.15},
		{Indicator: indicator.DebtToEquity, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.05},
	},

	{"Healthcare", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.20},
		{Indicator: indicator.RevenueGrowth, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.PERatio, Weight: 0.15},
		{Indicator: indicator.FreeCashFlow, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
	{"Healthcare", model.HorizonLong}: {
		{Indicator: indicator.ROE, Weight: 0.20},
		{Indicator: indicator.RevenueGrowth, Weight: 0.20},
		{Indicator: indicator.FreeCashFlow, Weight: 0.20},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.PEGRatio, Weight: 0.10},
	},

	{"Financial Services", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.20},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.PERatio, Weight: 0.15},
		{Indicator: indicator.ROE, Weight: 0.15},
		{Indicator: indicator.PriceToBook, Weight: 0.15},
		{Indicator: indicator.DividendYield, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
	{"Financial Services", model.HorizonLong}: {
		{Indicator: indicator.ROE, Weight: 0.25},
		{Indicator: indicator.DividendYield, Weight: 0.20},
		{Indicator: indicator.PriceToBook, Weight: 0.20},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.ProfitMargins, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},

	{"Consumer Cyclical", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.25},
		{Indicator: indicator.RevenueGrowth, Weight: 0.20},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.VolumeTrend, Weight: 0.10},
		{Indicator: indicator.PERatio, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.05},
	},
	{"Consumer Cyclical", model.HorizonLong}: {
		{Indicator: indicator.RevenueGrowth, Weight: 0.20},
		{Indicator: indicator.ROE, Weight: 0.20},
		{Indicator: indicator.ProfitMargins, Weight: 0.20},
		{Indicator: indicator.FreeCashFlow, Weight: 0.15},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.PEGRatio, Weight: 0.10},
	},

	{"Consumer Defensive", model.HorizonShort}: {
		{Indicator: indicator.DividendYield, Weight: 0.25},
		{Indicator: indicator.Momentum6M, Weight: 0.20},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.Beta, Weight: 0.15},
		{Indicator: indicator.DebtToEquity, Weight: 0.10},
	},
	{"Consumer Defensive", model.HorizonLong}: {
		{Indicator: indicator.DividendYield, Weight: 0.30},
		{Indicator: indicator.DividendGrowth, Weight: 0.20},
		{Indicator: indicator.ROE, Weight: 0.15},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.DebtToEquity, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},

	{"Energy", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.25},
		{Indicator: indicator.OperatingMargin, Weight: 0.20},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.FreeCashFlow, Weight: 0.15},
		{Indicator: indicator.DividendYield, Weight: 0.15},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
	{"Energy", model.HorizonLong}: {
		{Indicator: indicator.FreeCashFlow, Weight: 0.25},
		{Indicator: indicator.DividendYield, Weight: 0.20},
		{Indicator: indicator.OperatingMargin, Weight: 0.20},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.ROE, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},

	{"Industrials", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.20},
		{Indicator: indicator.RevenueGrowth, Weight: 0.20},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.OperatingMargin, Weight: 0.15},
		{Indicator: indicator.FreeCashFlow, Weight: 0.15},
		{Indicator: indicator.Beta, Weight: 0.15},
	},
	{"Industrials", model.HorizonLong}: {
		{Indicator: indicator.ROE, Weight: 0.20},
		{Indicator: indicator.FreeCashFlow, Weight: 0.20},
		{Indicator: indicator.OperatingMargin, Weight: 0.20},
		{Indicator: indicator.DebtToEquity, Weight: 0.20},
		{Indicator: indicator.DividendYield, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},

	{"Real Estate", model.HorizonShort}: {
		{Indicator: indicator.DividendYield, Weight: 0.25},
		{Indicator: indicator.PriceToBook, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.10},
		{Indicator: indicator.DebtToAssets, Weight: 0.15},
		{Indicator: indicator.Beta, Weight: 0.15},
	},
	{"Real Estate", model.HorizonLong}: {
		{Indicator: indicator.DividendYield, Weight: 0.30},
		{Indicator: indicator.DividendGrowth, Weight: 0.20},
		{Indicator: indicator.DebtToAssets, Weight: 0.20},
		{Indicator: indicator.PriceToBook, Weight: 0.15},
		{Indicator: indicator.ROE, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.05},
	},

	{"Utilities", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.15},
		{Indicator: indicator.DividendYield, Weight: 0.30},
		{Indicator: indicator.Beta, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.10},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.CurrentRatio, Weight: 0.15},
	},
	{"Utilities", model.HorizonLong}: {
		{Indicator: indicator.DividendYield, Weight: 0.30},
		{Indicator: indicator.DividendGrowth, Weight: 0.25},
		{Indicator: indicator.DebtToEquity, Weight: 0.20},
		{Indicator: indicator.Beta, Weight: 0.15},
		{Indicator: indicator.FreeCashFlow, Weight: 0.10},
	},

	{"Basic Materials", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.20},
		{Indicator: indicator.OperatingMargin, Weight: 0.20},
		{Indicator: indicator.FreeCashFlow, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.10},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.RevenueGrowth, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
	{"Basic Materials", model.HorizonLong}: {
		{Indicator: indicator.FreeCashFlow, Weight: 0.25},
		{Indicator: indicator.OperatingMargin, Weight: 0.20},
		{Indicator: indicator.DebtToEquity, Weight: 0.20},
		{Indicator: indicator.ROE, Weight: 0.15},
		{Indicator: indicator.CurrentRatio, Weight: 0.10},
		{Indicator: indicator.DividendYield, Weight: 0.10},
	},

	{"Communication Services", model.HorizonShort}: {
		{Indicator: indicator.Momentum6M, Weight: 0.20},
		{Indicator: indicator.RevenueGrowth, Weight: 0.20},
		{Indicator: indicator.OperatingMargin, Weight: 0.15},
		{Indicator: indicator.RSI, Weight: 0.10},
		{Indicator: indicator.FreeCashFlow, Weight: 0.15},
		{Indicator: indicator.VolumeTrend, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
	{"Communication Services", model.HorizonLong}: {
		{Indicator: indicator.FreeCashFlow, Weight: 0.25},
		{Indicator: indicator.OperatingMargin, Weight: 0.20},
		{Indicator: indicator.RevenueGrowth, Weight: 0.15},
		{Indicator: indicator.DebtToEquity, Weight: 0.15},
		{Indicator: indicator.ROE, Weight: 0.15},
		{Indicator: indicator.DividendYield, Weight: 0.10},
	},
}

// defaultProfiles covers every sector string outside the recognized set.
var defaultProfiles = map[model.Horizon]model.WeightProfile{
	model.HorizonShort: {
		{Indicator: indicator.Momentum6M, Weight: 0.25},
		{Indicator: indicator.RSI, Weight: 0.15},
		{Indicator: indicator.VolumeTrend, Weight: 0.15},
		{Indicator: indicator.RevenueGrowth, Weight: 0.15},
		{Indicator: indicator.ProfitMargins, Weight: 0.15},
		{Indicator: indicator.Beta, Weight: 0.15},
	},
	model.HorizonLong: {
		{Indicator: indicator.ROE, Weight: 0.20},
		{Indicator: indicator.ProfitMargins, Weight: 0.20},
		{Indicator: indicator.FreeCashFlow, Weight: 0.20},
		{Indicator: indicator.DebtToEquity, Weight: 0.20},
		{Indicator: indicator.DividendYield, Weight: 0.10},
		{Indicator: indicator.Beta, Weight: 0.10},
	},
}

// Lookup returns the weight profile for a sector and horizon. It never fails:
// unrecognized sectors resolve to the default profile for the horizon.
func Lookup(sector string, horizon model.Horizon) model.WeightProfile {
	if p, ok := profiles[profileKey{sector, horizon}]; ok {
		return p
	}
	return defaultProfiles[horizon]
}
