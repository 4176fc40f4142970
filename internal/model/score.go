package model

// IndicatorScore is one indicator's result on the 0-10 scale.
type IndicatorScore struct {
	Name  string
	Value float64
}

// WeightedIndicator pairs an indicator name with its aggregation weight.
type WeightedIndicator struct {
	Indicator string
	Weight    float64
}

// WeightProfile is the ordered (indicator, weight) list used to aggregate
// indicator scores for one sector and horizon. Weights need not sum to 1.0;
// the engine normalizes by the total weight actually used.
type WeightProfile []WeightedIndicator

// TotalWeight returns the sum of all weights in the profile.
func (p WeightProfile) TotalWeight() float64 {
	var total float64
	for _, wi := range p {
		total += wi.Weight
	}
	return total
}

// ScoreResult is the output of one scoring run.
type ScoreResult struct {
	Ticker     string
	Company    string
	Sector     string
	Industry   string
	Horizon    Horizon
	FinalScore float64 // 0-100, rounded to 2 decimals
	Breakdown  map[string]IndicatorScore
	Profile    WeightProfile
	Financials *RawFinancials
}
