// Package render formats engine values for display.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fxcalc/internal/domain"

	"github.com/shopspring/decimal"
)

const InvalidAmountMessage = "Please enter a valid amount"

// Amount rounds v to two decimals and groups the integer part in thousands: 12593 -> "12,593.00".
func Amount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return groupThousands(decimal.NewFromFloat(v).StringFixed(2))
}

// RateLine describes a rate the way the calculator shows it: "1 USD = 128.50 KES".
func RateLine(source, target string, rate float64) string {
	return fmt.Sprintf("1 %s = %s %s", source, Amount(rate), target)
}

func NetLine(res domain.ConversionResult) string {
	return Amount(res.NetAmount) + " " + res.TargetCurrency
}

func FeeLine(res domain.ConversionResult) string {
	return "Fee: " + Amount(res.FeeAmount) + " " + res.TargetCurrency
}

// ParseAmount reads a user supplied decimal amount. Anything unparsable,
// including hex notation, becomes NaN, which the engine rejects as an
// invalid amount.
func ParseAmount(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if digits := strings.TrimLeft(s, "+-"); len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
