package conversion

import (
	"math"

	"fxcalc/internal/domain"
)

// Engine converts amounts using a fixed rate table and deducts the service fee.
// It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	table *RateTable
}

func NewEngine(table *RateTable) *Engine {
	return &Engine{table: table}
}

// GetRate returns the multiplier for source->target. Pairs missing from the
// table convert 1:1; no error is reported for them.
func (e *Engine) GetRate(source, target string) float64 {
	if v, ok := e.table.Lookup(domain.RatePair{Base: source, Quote: target}); ok {
		return v
	}
	return 1
}

func (e *Engine) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	if !validAmount(req.Amount) {
		return domain.ConversionResult{}, domain.ErrInvalidAmount
	}

	gross := req.Amount * e.GetRate(req.Source, req.Target)
	fee := gross * domain.FeePercent / 100

	return domain.ConversionResult{
		GrossAmount:    gross,
		FeeAmount:      fee,
		NetAmount:      gross - fee,
		TargetCurrency: req.Target,
	}, nil
}

// Swap flips the conversion direction. Callers re-resolve the rate afterwards.
func Swap(source, target string) (string, string) {
	p := domain.RatePair{Base: source, Quote: target}.Reversed()
	return p.Base, p.Quote
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
