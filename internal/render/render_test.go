package render

import (
	"math"
	"testing"

	"fxcalc/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.00"},
		{in: 0.00778, want: "0.01"},
		{in: 1, want: "1.00"},
		{in: 257, want: "257.00"},
		{in: 999.999, want: "1,000.00"},
		{in: 12593, want: "12,593.00"},
		{in: 128.5, want: "128.50"},
		{in: 1234567.891, want: "1,234,567.89"},
		{in: 2.675, want: "2.68"},
		{in: -1234.5, want: "-1,234.50"},
		{in: 100000, want: "100,000.00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Amount(tc.in), "Amount(%v)", tc.in)
	}
}

func TestAmount_NonFinite(t *testing.T) {
	require.Equal(t, "NaN", Amount(math.NaN()))
	require.Equal(t, "+Inf", Amount(math.Inf(1)))
}

func TestRateLine(t *testing.T) {
	require.Equal(t, "1 USD = 128.50 KES", RateLine("USD", "KES", 128.50))
	require.Equal(t, "1 KES = 0.01 USD", RateLine("KES", "USD", 0.00778))
	require.Equal(t, "1 EUR = 1.00 GBP", RateLine("EUR", "GBP", 1))
}

func TestResultLines(t *testing.T) {
	res := domain.ConversionResult{GrossAmount: 12850, FeeAmount: 257, NetAmount: 12593, TargetCurrency: "KES"}

	require.Equal(t, "12,593.00 KES", NetLine(res))
	require.Equal(t, "Fee: 257.00 KES", FeeLine(res))
}

func TestParseAmount(t *testing.T) {
	require.Equal(t, 100.0, ParseAmount("100"))
	require.Equal(t, 12.5, ParseAmount(" 12.5 "))
	require.Equal(t, 12593.0, ParseAmount("12,593"))
	require.Equal(t, -5.0, ParseAmount("-5"))
	require.Equal(t, 0.0, ParseAmount("0"))

	require.Equal(t, 0.5, ParseAmount("0.5"))

	for _, raw := range []string{"", "abc", "12abc", ".", "1e999", "0x1p4", "0X10", "-0x1p4", "+0x10"} {
		require.True(t, math.IsNaN(ParseAmount(raw)), "ParseAmount(%q)", raw)
	}
}
