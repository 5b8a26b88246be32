package conversion

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"

	"fxcalc/internal/domain"
)

// DefaultRates is the rate table used when nothing else is configured.
func DefaultRates() []domain.Rate {
	return []domain.Rate{
		{Base: "USD", Quote: "KES", Value: 128.50},
		{Base: "KES", Quote: "USD", Value: 0.00778},
	}
}

// RateTable is an immutable mapping from an ordered currency pair to its multiplier.
type RateTable struct {
	rates map[domain.RatePair]float64 // read only
	pairs []domain.RatePair           // read only, sorted
	codes []string                    // read only, sorted
}

// NewRateTable builds a table from rates. Later entries for the same pair win.
func NewRateTable(rates []domain.Rate) (*RateTable, error) {
	m := make(map[domain.RatePair]float64, len(rates))
	codeSet := make(map[string]struct{}, len(rates)*2)
	for _, r := range rates {
		if r.Base == "" || r.Quote == "" {
			return nil, fmt.Errorf("rate %q/%q: currency code is required", r.Base, r.Quote)
		}
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) || r.Value <= 0 {
			return nil, fmt.Errorf("rate %s/%s: multiplier must be a positive number, got %v", r.Base, r.Quote, r.Value)
		}
		m[domain.RatePair{Base: r.Base, Quote: r.Quote}] = r.Value
		codeSet[r.Base] = struct{}{}
		codeSet[r.Quote] = struct{}{}
	}

	pairs := slices.SortedFunc(maps.Keys(m), func(a, b domain.RatePair) int {
		return cmp.Or(cmp.Compare(a.Base, b.Base), cmp.Compare(a.Quote, b.Quote))
	})

	return &RateTable{
		rates: m,
		pairs: pairs,
		codes: slices.Sorted(maps.Keys(codeSet)),
	}, nil
}

func (t *RateTable) Lookup(pair domain.RatePair) (float64, bool) {
	v, ok := t.rates[pair]
	return v, ok
}

func (t *RateTable) Pairs() []domain.RatePair {
	return slices.Clone(t.pairs)
}

func (t *RateTable) SupportedCodes() []string {
	return slices.Clone(t.codes)
}

func (t *RateTable) Len() int { return len(t.rates) }
