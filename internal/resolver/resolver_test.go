package resolver

import (
	"errors"
	"strings"
	"testing"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
	"StockScout/internal/provider"
)

func failingProvider() *provider.MockProvider {
	return &provider.MockProvider{
		QuoteFn: func(symbol string) (*model.RawFinancials, error) {
			return nil, errors.New("unknown symbol")
		},
	}
}

func TestResolve_ExactTicker(t *testing.T) {
	r := New(failingProvider())

	got, err := r.Resolve("AAPL", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Ticker)
	assert.Equal(t, 100, got[0].Score)

	// Ticker lookup is case-insensitive.
	got, err = r.Resolve("aapl", 0)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got[0].Ticker)
}

func TestResolve_ExactAlias(t *testing.T) {
	r := New(failingProvider())

	got, err := r.Resolve("apple", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Ticker)
	assert.Equal(t, 100, got[0].Score)

	got, err = r.Resolve("Johnson & Johnson", 0)
	require.NoError(t, err)
	assert.Equal(t, "JNJ", got[0].Ticker)
}

func TestResolve_FuzzyTypo(t *testing.T) {
	r := New(failingProvider())

	got, err := r.Resolve("microsft", 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "MSFT", got[0].Ticker)
	assert.Greater(t, got[0].Score, HighConfidence)
}

func TestResolve_MultiAliasTickerKeepsBestScore(t *testing.T) {
	probed := false
	mock := &provider.MockProvider{
		QuoteFn: func(symbol string) (*model.RawFinancials, error) {
			probed = true
			return nil, errors.New("unknown symbol")
		},
	}
	r := New(mock)

	// JPM is reachable through both "jp morgan" and "jpmorgan"; the typo is
	// closest to the latter, which must win the dedupe.
	got, err := r.Resolve("jpmorgn", 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "JPM", got[0].Ticker)
	assert.GreaterOrEqual(t, got[0].Score, fuzzy.TokenSortRatio("jpmorgn", "jpmorgan"))

	// The best-key score clears the short-circuit, so no provider probe.
	assert.Greater(t, got[0].Score, HighConfidence)
	assert.False(t, probed)
}

func TestResolve_NoMatch(t *testing.T) {
	r := New(failingProvider())

	_, err := r.Resolve("zzzznotacompany", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatch))
}

func TestResolve_ProviderFallback(t *testing.T) {
	probes := 0
	mock := &provider.MockProvider{
		QuoteFn: func(symbol string) (*model.RawFinancials, error) {
			probes++
			if strings.EqualFold(symbol, "SPOTIFY") {
				return &model.RawFinancials{
					Symbol:   "SPOT",
					LongName: "Spotify Technology S.A.",
				}, nil
			}
			return nil, errors.New("unknown symbol")
		},
	}
	r := New(mock)

	got, err := r.Resolve("spotify", 0)
	require.NoError(t, err)

	var found bool
	for _, c := range got {
		if c.Ticker == "SPOT" {
			found = true
			assert.Equal(t, "Spotify Technology S.A.", c.Name)
		}
	}
	assert.True(t, found, "provider-discovered ticker missing from %v", got)
	assert.Greater(t, probes, 0)
}

func TestResolve_HighConfidenceSkipsProvider(t *testing.T) {
	probed := false
	mock := &provider.MockProvider{
		QuoteFn: func(symbol string) (*model.RawFinancials, error) {
			probed = true
			return nil, errors.New("should not be called")
		},
	}
	r := New(mock)

	_, err := r.Resolve("microsoft", 0)
	require.NoError(t, err)
	assert.False(t, probed, "exact alias hit must not probe the provider")
}

func TestResolve_EmptyQuerySuggestions(t *testing.T) {
	r := New(failingProvider())

	got, err := r.Resolve("", 0)
	require.NoError(t, err)
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, "AAPL", got[0].Ticker)
	for _, c := range got {
		assert.Equal(t, 100, c.Score)
	}

	got, err = r.Resolve("   ", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestResolve_LimitCapsResults(t *testing.T) {
	r := New(failingProvider())

	got, err := r.Resolve("microsof", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MSFT", got[0].Ticker)
}

func TestResolve_DeduplicatesTickers(t *testing.T) {
	r := New(failingProvider())

	// Both "mcdonald" and "mcdonalds" point at MCD; only one survives.
	got, err := r.Resolve("mcdonal", 0)
	require.NoError(t, err)
	seen := make(map[string]int)
	for _, c := range got {
		seen[c.Ticker]++
	}
	for ticker, n := range seen {
		assert.Equal(t, 1, n, "ticker %s appears %d times", ticker, n)
	}
}
