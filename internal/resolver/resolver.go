// Package resolver maps free-text company names and ticker-like input to
// canonical ticker symbols. Lookups are two-tier: a static in-memory alias
// table with fuzzy matching answers the common case instantly, and the
// market-data provider is probed for the long tail only when local confidence
// is insufficient.
package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockScout/internal/provider"
)

const (
	// MinScore is the fuzzy acceptability floor; weaker matches are dropped.
	MinScore = 60
	// HighConfidence short-circuits the provider fallback: a local match
	// strictly above this score is returned alone.
	HighConfidence = 85
	// DefaultLimit caps the candidate list when the caller passes no limit.
	DefaultLimit = 8

	// maxTickerLen bounds input still treated as a possible ticker symbol.
	// Partial-ratio matching against short symbols degenerates on long
	// free-text queries, so it only applies to ticker-length input.
	maxTickerLen = 6
)

// ErrNoMatch is returned when no candidate survives all resolution steps.
var ErrNoMatch = errors.New("no matching company")

// Candidate is one ranked resolution result. Provider-discovered candidates
// carry no similarity score and rank after local matches.
type Candidate struct {
	Ticker string
	Name   string
	Score  int
}

// Resolver resolves free text to ticker symbols.
type Resolver struct {
	provider provider.Provider
	log      zerolog.Logger
}

// New creates a Resolver using the package alias table and the given provider
// for long-tail lookups.
func New(p provider.Provider) *Resolver {
	return &Resolver{
		provider: p,
		log:      log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve maps query to ranked ticker candidates. Exact alias and ticker
// matches return immediately with confidence 100; otherwise fuzzy local
// matches above MinScore are collected, and the provider is probed with
// casing and exchange-suffix variants when no local match clears
// HighConfidence. Returns ErrNoMatch when every step comes up empty.
func (r *Resolver) Resolve(query string, limit int) ([]Candidate, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return capped(defaultSuggestions, limit), nil
	}

	norm := strings.ToLower(query)
	upper := strings.ToUpper(query)

	if name, ok := tickerIndex[upper]; ok {
		return []Candidate{{Ticker: upper, Name: name, Score: 100}}, nil
	}
	if a, ok := aliases[norm]; ok {
		return []Candidate{{Ticker: a.Ticker, Name: a.DisplayName, Score: 100}}, nil
	}

	local := r.searchLocal(norm, upper)
	if len(local) > 0 && local[0].Score > HighConfidence {
		return capped(local, limit), nil
	}

	remote := r.probeProvider(query, limit)

	merged := make([]Candidate, 0, len(local)+len(remote))
	seen := make(map[string]bool)
	for _, c := range append(local, remote...) {
		if seen[c.Ticker] {
			continue
		}
		seen[c.Ticker] = true
		merged = append(merged, c)
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}
	return capped(merged, limit), nil
}

// searchLocal fuzzy-matches the query against alias keys (token-order
// insensitive) and, for ticker-length input, against known symbols
// (partial-substring). A ticker reachable through several alias keys keeps
// its best score; results are sorted by descending score.
func (r *Resolver) searchLocal(norm, upper string) []Candidate {
	best := make(map[string]Candidate)

	for _, key := range aliasKeys {
		score := fuzzy.TokenSortRatio(norm, key)
		if score <= MinScore {
			continue
		}
		a := aliases[key]
		if prev, ok := best[a.Ticker]; ok && prev.Score >= score {
			continue
		}
		best[a.Ticker] = Candidate{Ticker: a.Ticker, Name: a.DisplayName, Score: score}
	}

	if len(upper) <= maxTickerLen {
		for _, ticker := range tickerKeys {
			score := fuzzy.PartialRatio(upper, ticker)
			if score <= MinScore {
				continue
			}
			if prev, ok := best[ticker]; ok && prev.Score >= score {
				continue
			}
			best[ticker] = Candidate{Ticker: ticker, Name: tickerIndex[ticker], Score: score}
		}
	}

	// tickerKeys covers every ticker in the alias table, so iterating it
	// gives the map a deterministic order before the stable sort.
	results := make([]Candidate, 0, len(best))
	for _, ticker := range tickerKeys {
		if c, ok := best[ticker]; ok {
			results = append(results, c)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// probeProvider queries the provider with casing and exchange-suffix variants
// of the input to discover tickers outside the static table. Failed probes
// are skipped; the loop is bounded by the fixed variant set.
func (r *Resolver) probeProvider(query string, limit int) []Candidate {
	upper := strings.ToUpper(query)
	variants := []string{
		upper,
		strings.ToLower(query),
		capitalize(query),
		upper + ".MI", // Milan listings
		upper + ".PA", // Paris listings
	}

	var results []Candidate
	seen := make(map[string]bool)
	for _, variant := range variants {
		if len(results) >= limit {
			break
		}
		quote, err := r.provider.FetchQuote(variant)
		if err != nil {
			continue
		}
		symbol := quote.Symbol
		if symbol == "" || seen[symbol] {
			continue
		}
		name := quote.CompanyName()
		if len(name) <= 1 {
			continue
		}
		seen[symbol] = true
		results = append(results, Candidate{Ticker: symbol, Name: name})
	}

	if len(results) > 0 {
		r.log.Debug().Str("query", query).Int("candidates", len(results)).
			Msg("provider probe discovered tickers")
	}
	return results
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func capped(candidates []Candidate, limit int) []Candidate {
	if len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
