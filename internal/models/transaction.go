package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the format-independent record every statement is
// normalized into.
type Transaction struct {
	Date            time.Time
	Amount          decimal.Decimal
	Payee           string
	TransactionType string
	FITID           string
	Status          string // never set by the built-in formats
	Memo            string
}

// FromParsed fills t from a parsed record, resolving its date. Date failures
// are returned as *parsererror.DateError.
func (t *Transaction) FromParsed(p ParsedTransaction) error {
	switch v := p.(type) {
	case QfxTransaction:
		date, err := v.DtPosted.Time()
		if err != nil {
			return err
		}
		*t = Transaction{
			Date:            date,
			Amount:          v.Amount,
			Payee:           v.Name,
			TransactionType: v.TrnType,
			FITID:           v.FITID,
			Memo:            v.Memo,
		}
	case CsvTransaction:
		date, err := v.Date.Time()
		if err != nil {
			return err
		}
		*t = Transaction{
			Date:            date,
			Amount:          v.Amount,
			Payee:           v.Description,
			TransactionType: v.TrnType,
			FITID:           v.FITID,
			Memo:            v.Memo,
		}
	default:
		return fmt.Errorf("unhandled parsed transaction type %T", p)
	}
	return nil
}

// IsDebit reports whether the transaction takes money out of the account.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}
