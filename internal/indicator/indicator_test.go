package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
	"StockScout/internal/provider"
)

// fakeSource is a fixed in-memory Source.
type fakeSource struct {
	quote     *model.RawFinancials
	history   map[string][]model.OHLCV
	dividends []model.Dividend
}

func (f *fakeSource) Quote() *model.RawFinancials         { return f.quote }
func (f *fakeSource) History(period string) []model.OHLCV { return f.history[period] }
func (f *fakeSource) Dividends() []model.Dividend         { return f.dividends }

func bars(closes ...float64) []model.OHLCV {
	out := make([]model.OHLCV, len(closes))
	base := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 100,
		}
	}
	return out
}

func allNames() []string {
	return []string{
		Momentum6M, Momentum3M, RSI, VolumeTrend,
		PERatio, PEGRatio, RevenueGrowth, ProfitMargins, OperatingMargin,
		ROE, ROA, DebtToEquity, DebtToAssets, CurrentRatio, FreeCashFlow,
		DividendYield, DividendGrowth, PriceToBook, Beta,
	}
}

func TestScore_MissingDataIsNeutral(t *testing.T) {
	empty := &fakeSource{}
	for _, name := range allNames() {
		assert.Equal(t, Neutral, Score(name, empty), "indicator %s", name)
	}

	// Empty quote struct behaves like a missing quote too.
	sparse := &fakeSource{quote: &model.RawFinancials{Symbol: "XYZ"}}
	for _, name := range allNames() {
		assert.Equal(t, Neutral, Score(name, sparse), "indicator %s", name)
	}
}

func TestScore_AlwaysWithinRange(t *testing.T) {
	sources := []*fakeSource{
		{},
		{
			quote: &model.RawFinancials{
				TrailingPE:       model.Float(-30),
				PEGRatio:         model.Float(9.5),
				RevenueGrowth:    model.Float(-0.9),
				ProfitMargins:    model.Float(-0.5),
				OperatingMargins: model.Float(2.0),
				ReturnOnEquity:   model.Float(4.0),
				ReturnOnAssets:   model.Float(-1.0),
				DebtToEquity:     model.Float(900),
				TotalDebt:        model.Float(1e12),
				TotalAssets:      model.Float(1e9),
				CurrentRatio:     model.Float(0.01),
				FreeCashflow:     model.Float(-5e9),
				DividendYield:    model.Float(0.25),
				PriceToBook:      model.Float(80),
				Beta:             model.Float(4.5),
			},
			history: map[string][]model.OHLCV{
				provider.Period3M: bars(100, 10, 400, 8, 900, 3, 1000, 2, 500, 1,
					300, 0.5, 200, 0.3, 100, 0.2, 50, 0.1, 40, 0.05),
				provider.Period6M: bars(100, 800),
			},
			dividends: []model.Dividend{{Amount: 1}, {Amount: 0.01}},
		},
	}
	for _, src := range sources {
		for _, name := range allNames() {
			v := Score(name, src)
			assert.GreaterOrEqual(t, v, 0.0, "indicator %s", name)
			assert.LessOrEqual(t, v, 10.0, "indicator %s", name)
		}
	}
}

func TestScore_UnknownIndicator(t *testing.T) {
	assert.Equal(t, Neutral, Score("Astrology", &fakeSource{}))
	assert.False(t, Known("Astrology"))
	assert.True(t, Known(PERatio))
}

func TestFundamentalBands(t *testing.T) {
	tests := []struct {
		name  string
		quote model.RawFinancials
		ind   string
		want  float64
	}{
		{"revenue growth 25pct", model.RawFinancials{RevenueGrowth: model.Float(0.25)}, RevenueGrowth, 9.0},
		{"revenue growth negative", model.RawFinancials{RevenueGrowth: model.Float(-0.12)}, RevenueGrowth, 1.0},
		{"profit margins 28pct", model.RawFinancials{ProfitMargins: model.Float(0.28)}, ProfitMargins, 10.0},
		{"operating margin 12pct", model.RawFinancials{OperatingMargins: model.Float(0.12)}, OperatingMargin, 7.0},
		{"roe 22pct", model.RawFinancials{ReturnOnEquity: model.Float(0.22)}, ROE, 9.0},
		{"roa 8pct", model.RawFinancials{ReturnOnAssets: model.Float(0.08)}, ROA, 8.0},
		{"peg 0.8", model.RawFinancials{PEGRatio: model.Float(0.8)}, PEGRatio, 9.0},
		{"peg non-positive", model.RawFinancials{PEGRatio: model.Float(-1)}, PEGRatio, Neutral},
		{"fcf 12B", model.RawFinancials{FreeCashflow: model.Float(12e9)}, FreeCashFlow, 10.0},
		{"fcf negative", model.RawFinancials{FreeCashflow: model.Float(-1e6)}, FreeCashFlow, 2.0},
		{"debt/equity 15", model.RawFinancials{DebtToEquity: model.Float(15)}, DebtToEquity, 10.0},
		{"debt/equity 500", model.RawFinancials{DebtToEquity: model.Float(500)}, DebtToEquity, 1.5},
		{"debt/assets 25pct", model.RawFinancials{TotalDebt: model.Float(25), TotalAssets: model.Float(100)}, DebtToAssets, 9.0},
		{"debt/assets zero assets", model.RawFinancials{TotalDebt: model.Float(25), TotalAssets: model.Float(0)}, DebtToAssets, Neutral},
		{"current ratio 2.2", model.RawFinancials{CurrentRatio: model.Float(2.2)}, CurrentRatio, 9.0},
		{"price/book 1.2", model.RawFinancials{PriceToBook: model.Float(1.2)}, PriceToBook, 9.0},
		{"beta 1.1", model.RawFinancials{Beta: model.Float(1.1)}, Beta, 7.0},
		{"beta 0.3", model.RawFinancials{Beta: model.Float(0.3)}, Beta, 10.0},
		{"pe trailing low", model.RawFinancials{TrailingPE: model.Float(8)}, PERatio, 10.0},
		{"pe 22", model.RawFinancials{TrailingPE: model.Float(22)}, PERatio, 6.0},
		{"pe non-positive", model.RawFinancials{TrailingPE: model.Float(-4)}, PERatio, Neutral},
		{"dividend yield 3.5pct", model.RawFinancials{DividendYield: model.Float(0.035)}, DividendYield, 8.0},
		{"dividend yield zero", model.RawFinancials{DividendYield: model.Float(0)}, DividendYield, Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.quote
			assert.Equal(t, tt.want, Score(tt.ind, &fakeSource{quote: &q}))
		})
	}
}

func TestPERatio_ForwardFallback(t *testing.T) {
	src := &fakeSource{quote: &model.RawFinancials{ForwardPE: model.Float(12)}}
	assert.Equal(t, 9.0, Score(PERatio, src))

	// Trailing wins when both are present.
	both := &fakeSource{quote: &model.RawFinancials{
		TrailingPE: model.Float(45),
		ForwardPE:  model.Float(12),
	}}
	assert.Equal(t, 1.0, Score(PERatio, both))
}

func TestMomentumBands(t *testing.T) {
	strong := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period6M: bars(100, 105, 110, 140), // +40%
		provider.Period3M: bars(100, 112),           // +12%
	}}
	assert.Equal(t, 10.0, Score(Momentum6M, strong))
	assert.Equal(t, 8.0, Score(Momentum3M, strong))

	weak := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period6M: bars(100, 80), // -20%
		provider.Period3M: bars(100, 93), // -7%
	}}
	assert.Equal(t, 1.0, Score(Momentum6M, weak))
	assert.Equal(t, 3.0, Score(Momentum3M, weak))

	short := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period6M: bars(100),
	}}
	assert.Equal(t, Neutral, Score(Momentum6M, short))
}

func TestRSI_ContrarianScoring(t *testing.T) {
	decline := make([]float64, 20)
	for i := range decline {
		decline[i] = 200 - float64(i)*5
	}
	oversold := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period3M: bars(decline...),
	}}
	// Pure decline pins RSI at 0 and the contrarian policy rewards it.
	assert.Equal(t, 10.0, Score(RSI, oversold))

	rise := make([]float64, 20)
	for i := range rise {
		rise[i] = 100 + float64(i)*5
	}
	overbought := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period3M: bars(rise...),
	}}
	assert.Equal(t, 0.0, Score(RSI, overbought))

	flat := make([]float64, 20)
	for i := range flat {
		flat[i] = 150
	}
	noMove := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period3M: bars(flat...),
	}}
	assert.Equal(t, Neutral, Score(RSI, noMove))
}

func TestVolumeTrend(t *testing.T) {
	history := bars(make([]float64, 30)...)
	for i := range history {
		history[i].Close = 100
		if i < 20 {
			history[i].Volume = 100
		} else {
			history[i].Volume = 200
		}
	}
	surge := &fakeSource{history: map[string][]model.OHLCV{provider.Period3M: history}}
	assert.Equal(t, 9.0, Score(VolumeTrend, surge))

	thin := &fakeSource{history: map[string][]model.OHLCV{
		provider.Period3M: bars(100, 101, 102),
	}}
	assert.Equal(t, Neutral, Score(VolumeTrend, thin))
}

func TestDividendGrowth(t *testing.T) {
	// One full comparison window: prior year pays 1.0 per event, trailing
	// year 1.2, a 20% increase.
	events := make([]model.Dividend, 2*dividendWindow)
	for i := range events {
		amount := 1.0
		if i >= dividendWindow {
			amount = 1.2
		}
		events[i] = model.Dividend{Amount: amount}
	}
	growing := &fakeSource{dividends: events}
	require.Equal(t, 10.0, Score(DividendGrowth, growing))

	// Too few events.
	assert.Equal(t, Neutral, Score(DividendGrowth, &fakeSource{
		dividends: []model.Dividend{{Amount: 0.5}},
	}))

	// No prior-year window to compare against.
	assert.Equal(t, Neutral, Score(DividendGrowth, &fakeSource{
		dividends: events[:100],
	}))
}
