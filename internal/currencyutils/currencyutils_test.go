package currencyutils

import (
	"testing"

	"fjacquet/bank-statement/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExactAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"positive", "100.00", "100", false},
		{"negative", "-50.00", "-50", false},
		{"zero", "0", "0", false},
		{"zero with scale", "0.00", "0", false},
		{"cent", "0.01", "0.01", false},
		{"large", "9999999.99", "9999999.99", false},
		{"padded", " 42.10 ", "42.1", false},
		{"empty", "", "", true},
		{"letters", "abc", "", true},
		{"currency symbol", "$100.00", "", true},
		{"thousands separator", "1,000.00", "", true},
		{"comma decimal", "12,50", "", true},
		{"exponent", "1e5", "", true},
		{"two dots", "1.2.3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExactAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, parsererror.ErrInvalidAmount)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestFormatExact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-50.00", "-50.00"},
		{"1500.00", "1500.00"},
		{"0.01", "0.01"},
		{"100", "100"},
		{"12.5", "12.5"},
		{"-0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseExactAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatExact(amount))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("-50")
	assert.Equal(t, "-50.00", FormatAmount(amount, ""))
	assert.Equal(t, "-50.00 USD", FormatAmount(amount, "USD"))
}
