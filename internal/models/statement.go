package models

import (
	"strconv"

	"fjacquet/bank-statement/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// Statement kinds reported in StatementInfo.Kind.
const (
	StatementKindBank       = "bank"
	StatementKindCreditCard = "creditcard"
)

// StatementInfo is the header metadata of an OFX statement. Dates stay
// unresolved; a missing element leaves its field empty.
type StatementInfo struct {
	Kind          string          `json:"kind" yaml:"kind"`
	Organization  string          `json:"organization,omitempty" yaml:"organization,omitempty"`
	Currency      string          `json:"currency,omitempty" yaml:"currency,omitempty"`
	BankID        string          `json:"bank_id,omitempty" yaml:"bank_id,omitempty"`
	AccountID     string          `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	AccountType   string          `json:"account_type,omitempty" yaml:"account_type,omitempty"`
	Start         QfxDate         `json:"start,omitempty" yaml:"start,omitempty"`
	End           QfxDate         `json:"end,omitempty" yaml:"end,omitempty"`
	LedgerBalance ExactAmount     `json:"ledger_balance" yaml:"ledger_balance"`
	BalanceAsOf   QfxDate         `json:"balance_as_of,omitempty" yaml:"balance_as_of,omitempty"`
	Transactions  int             `json:"transactions" yaml:"transactions"`
}

// ExactAmount is a decimal that serializes with the scale it was parsed
// with: a BALAMT of 1234.50 is written as "1234.50", not "1234.5".
type ExactAmount struct {
	decimal.Decimal
}

// NewExactAmount wraps d.
func NewExactAmount(d decimal.Decimal) ExactAmount {
	return ExactAmount{Decimal: d}
}

// String renders the amount with currencyutils.FormatExact.
func (a ExactAmount) String() string {
	return currencyutils.FormatExact(a.Decimal)
}

// MarshalText is used by yaml.v3.
func (a ExactAmount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// MarshalJSON shadows decimal.Decimal.MarshalJSON, which drops trailing zeros.
func (a ExactAmount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}
