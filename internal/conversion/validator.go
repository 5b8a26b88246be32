package conversion

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrSourceRequired  = errors.New("source currency is required")
	ErrTargetRequired  = errors.New("target currency is required")
	ErrSourceMalformed = errors.New("source currency must be a 3-letter code")
	ErrTargetMalformed = errors.New("target currency must be a 3-letter code")
)

// CurrencyValidator checks the shape of currency codes coming from clients.
// Codes outside the rate table are accepted; the engine converts them 1:1.
type CurrencyValidator struct {
	supportedCodes []string // read only copy
}

func (v *CurrencyValidator) ValidateCodes(source, target string) error {
	if source == "" {
		return ErrSourceRequired
	}
	if target == "" {
		return ErrTargetRequired
	}
	if !isCode(source) {
		return ErrSourceMalformed
	}
	if !isCode(target) {
		return ErrTargetMalformed
	}
	return nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodes)
}

func NewValidator(supportedCodes []string) *CurrencyValidator {
	codes := slices.Clone(supportedCodes)
	slices.Sort(codes)
	return &CurrencyValidator{supportedCodes: slices.Compact(codes)}
}

// NormalizeCode trims and upper-cases a client supplied code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
