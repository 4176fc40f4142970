package model

// RawFinancials is the flat field snapshot for one ticker as returned by the
// market-data provider. Numeric fields are pointers: nil means the provider
// did not supply the field, and every consumer must treat nil as a first-class
// "absent" value rather than an error.
type RawFinancials struct {
	Symbol    string
	LongName  string
	ShortName string
	Sector    string
	Industry  string

	CurrentPrice     *float64
	MarketCap        *float64
	TrailingPE       *float64
	ForwardPE        *float64
	PEGRatio         *float64
	PriceToBook      *float64
	RevenueGrowth    *float64
	ProfitMargins    *float64
	OperatingMargins *float64
	ReturnOnEquity   *float64
	ReturnOnAssets   *float64
	DebtToEquity     *float64
	TotalDebt        *float64
	TotalAssets      *float64
	CurrentRatio     *float64
	FreeCashflow     *float64
	DividendYield    *float64
	Beta             *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	AverageVolume    *float64

	Recommendation string
}

// CompanyName returns the best available display name for the issuer.
func (r *RawFinancials) CompanyName() string {
	if r.LongName != "" {
		return r.LongName
	}
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.Symbol
}

// Float is a convenience for building optional fields in tests and mocks.
func Float(v float64) *float64 { return &v }
