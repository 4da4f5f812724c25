package qfxparser

import (
	"fjacquet/bank-statement/internal/currencyutils"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"
	"fjacquet/bank-statement/internal/xmlutils"

	"github.com/shopspring/decimal"
)

// StatementInfo reads the statement header: institution, account, period
// and ledger balance. Fields absent from the document stay empty. Like
// Parse, it reads the bank statement when a document carries both kinds.
func (p *Parser) StatementInfo(content string) (models.StatementInfo, error) {
	body, err := ExtractOFX(content)
	if err != nil {
		return models.StatementInfo{}, err
	}

	root, err := xmlutils.ParseXML(body)
	if err != nil {
		return models.StatementInfo{}, parsererror.NewParseError(p.Name(), ReasonXMLParse, err)
	}

	paths := xmlutils.DefaultOFXPaths()
	var info models.StatementInfo

	isBank, err := xmlutils.Exists(root, paths.BankStatement)
	if err != nil {
		return info, err
	}
	isCard, err := xmlutils.Exists(root, paths.CardStatement)
	if err != nil {
		return info, err
	}
	var scoped xmlutils.StatementPaths
	switch {
	case isBank:
		info.Kind = models.StatementKindBank
		scoped = paths.Bank()
	case isCard:
		info.Kind = models.StatementKindCreditCard
		scoped = paths.CreditCard()
	default:
		return info, parsererror.NewParseError(p.Name(), ReasonNoTransactions, nil)
	}

	fields := []struct {
		xpath string
		dest  *string
	}{
		{paths.Organization, &info.Organization},
		{scoped.Currency, &info.Currency},
		{scoped.BankID, &info.BankID},
		{scoped.AccountID, &info.AccountID},
		{scoped.AccountType, &info.AccountType},
	}
	for _, f := range fields {
		if *f.dest, err = xmlutils.ExtractFirst(root, f.xpath); err != nil {
			return info, err
		}
	}

	dates := []struct {
		xpath string
		dest  *models.QfxDate
	}{
		{scoped.Start, &info.Start},
		{scoped.End, &info.End},
		{scoped.BalanceAsOf, &info.BalanceAsOf},
	}
	for _, d := range dates {
		value, err := xmlutils.ExtractFirst(root, d.xpath)
		if err != nil {
			return info, err
		}
		*d.dest = models.QfxDate(value)
	}

	balance, err := xmlutils.ExtractFirst(root, scoped.LedgerBalance)
	if err != nil {
		return info, err
	}
	info.LedgerBalance = models.NewExactAmount(decimal.Zero)
	if balance != "" {
		amount, err := currencyutils.ParseExactAmount(balance)
		if err != nil {
			return info, &parsererror.ParseError{Parser: p.Name(), Field: "BALAMT", Value: balance, Err: err}
		}
		info.LedgerBalance = models.NewExactAmount(amount)
	}

	entries, err := xmlutils.ExtractFromXML(root, scoped.Transaction)
	if err != nil {
		return info, err
	}
	info.Transactions = len(entries)
	return info, nil
}
