package models

import (
	"encoding/xml"
	"strings"
	"time"

	"fjacquet/bank-statement/internal/currencyutils"
	"fjacquet/bank-statement/internal/dateutils"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/shopspring/decimal"
)

// QfxDate is an unresolved OFX datetime, e.g. "20251226120000.000[-5:EST]".
type QfxDate string

// Time resolves the date to midnight UTC of its calendar day.
func (d QfxDate) Time() (time.Time, error) {
	return dateutils.ParseQfxDate(string(d))
}

// QfxTransaction is one STMTTRN entry of an OFX statement.
type QfxTransaction struct {
	TrnType  string          `json:"trn_type"`
	DtPosted QfxDate         `json:"dt_posted"`
	Amount   decimal.Decimal `json:"amount"`
	FITID    string          `json:"fitid,omitempty"`
	Name     string          `json:"name,omitempty"`
	Memo     string          `json:"memo,omitempty"`
}

// OfxDocument is the subset of the OFX response tree used for extraction.
// A nil message set means the block was absent from the document.
type OfxDocument struct {
	XMLName            xml.Name            `xml:"OFX"`
	BankMessages       *BankMessages       `xml:"BANKMSGSRSV1"`
	CreditCardMessages *CreditCardMessages `xml:"CREDITCARDMSGSRSV1"`
}

type BankMessages struct {
	TransactionResponse struct {
		TrnUID    string            `xml:"TRNUID"`
		Statement StatementResponse `xml:"STMTRS"`
	} `xml:"STMTTRNRS"`
}

type CreditCardMessages struct {
	TransactionResponse struct {
		TrnUID    string            `xml:"TRNUID"`
		Statement StatementResponse `xml:"CCSTMTRS"`
	} `xml:"CCSTMTTRNRS"`
}

// StatementResponse is shared by STMTRS and CCSTMTRS.
type StatementResponse struct {
	CurDef          string          `xml:"CURDEF"`
	TransactionList TransactionList `xml:"BANKTRANLIST"`
}

type TransactionList struct {
	DtStart      string           `xml:"DTSTART"`
	DtEnd        string           `xml:"DTEND"`
	Transactions []RawTransaction `xml:"STMTTRN"`
}

// RawTransaction is a STMTTRN element with every field still textual.
type RawTransaction struct {
	TrnType  string `xml:"TRNTYPE"`
	DtPosted string `xml:"DTPOSTED"`
	DtUser   string `xml:"DTUSER"`
	TrnAmt   string `xml:"TRNAMT"`
	FITID    string `xml:"FITID"`
	Name     string `xml:"NAME"`
	Memo     string `xml:"MEMO"`
}

// NewQfxTransaction validates the amount of raw and keeps its date unresolved.
// Text fields are trimmed so XML and SGML serializations decode alike.
func NewQfxTransaction(raw RawTransaction) (QfxTransaction, error) {
	amount, err := currencyutils.ParseExactAmount(raw.TrnAmt)
	if err != nil {
		return QfxTransaction{}, &parsererror.ParseError{
			Parser: string(FormatQFX),
			Field:  "TRNAMT",
			Value:  raw.TrnAmt,
			Err:    err,
		}
	}
	return QfxTransaction{
		TrnType:  strings.TrimSpace(raw.TrnType),
		DtPosted: QfxDate(strings.TrimSpace(raw.DtPosted)),
		Amount:   amount,
		FITID:    strings.TrimSpace(raw.FITID),
		Name:     strings.TrimSpace(raw.Name),
		Memo:     strings.TrimSpace(raw.Memo),
	}, nil
}
