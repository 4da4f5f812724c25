// Package currencyutils parses and formats monetary amounts as exact decimals.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/bank-statement/internal/parsererror"

	"github.com/shopspring/decimal"
)

// plain decimal literal: optional sign, digits, optional fraction. No
// currency symbols, grouping separators or exponents.
var exactAmountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParseExactAmount parses a statement amount token into an exact decimal.
// Anything that is not a plain decimal literal fails with an error wrapping
// parsererror.ErrInvalidAmount.
func ParseExactAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if !exactAmountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w '%s'", parsererror.ErrInvalidAmount, amountStr)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w '%s': %v", parsererror.ErrInvalidAmount, amountStr, err)
	}
	return amount, nil
}

// FormatExact renders amount keeping the scale it was parsed with, so
// "-50.00" round-trips as "-50.00" rather than "-50". decimal.Decimal has no
// negative zero: "-0.00" renders as "0.00".
func FormatExact(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}

// FormatAmount renders amount with two decimals and an optional currency code.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}
