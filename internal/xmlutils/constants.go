package xmlutils

// OFXPaths locate the signon block and the two statement aggregates.
type OFXPaths struct {
	Organization  string
	BankStatement string
	CardStatement string
}

// StatementPaths are the header expressions of one statement aggregate.
// Every expression is anchored under that aggregate, so a document carrying
// both a bank and a credit-card statement never mixes their values.
type StatementPaths struct {
	Currency      string
	BankID        string
	AccountID     string
	AccountType   string
	Start         string
	End           string
	LedgerBalance string
	BalanceAsOf   string
	Transaction   string
}

// DefaultOFXPaths returns the expressions for OFX 1.x/2.x bank and
// credit-card statement responses.
func DefaultOFXPaths() OFXPaths {
	return OFXPaths{
		Organization:  "//SONRS/FI/ORG",
		BankStatement: "//BANKMSGSRSV1/STMTTRNRS/STMTRS",
		CardStatement: "//CREDITCARDMSGSRSV1/CCSTMTTRNRS/CCSTMTRS",
	}
}

// Bank returns the expressions scoped to the STMTRS aggregate.
func (p OFXPaths) Bank() StatementPaths {
	return statementPaths(p.BankStatement, "BANKACCTFROM")
}

// CreditCard returns the expressions scoped to the CCSTMTRS aggregate.
// CCACCTFROM has no BANKID or ACCTTYPE, so those never match.
func (p OFXPaths) CreditCard() StatementPaths {
	return statementPaths(p.CardStatement, "CCACCTFROM")
}

func statementPaths(statement, account string) StatementPaths {
	return StatementPaths{
		Currency:      statement + "/CURDEF",
		BankID:        statement + "/" + account + "/BANKID",
		AccountID:     statement + "/" + account + "/ACCTID",
		AccountType:   statement + "/" + account + "/ACCTTYPE",
		Start:         statement + "/BANKTRANLIST/DTSTART",
		End:           statement + "/BANKTRANLIST/DTEND",
		LedgerBalance: statement + "/LEDGERBAL/BALAMT",
		BalanceAsOf:   statement + "/LEDGERBAL/DTASOF",
		Transaction:   statement + "/BANKTRANLIST/STMTTRN",
	}
}
