package qfxparser

import (
	"testing"

	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_StatementInfo(t *testing.T) {
	p, _ := newTestParser()

	info, err := p.StatementInfo(sgmlBankStatement)
	require.NoError(t, err)

	assert.Equal(t, models.StatementKindBank, info.Kind)
	assert.Equal(t, "ACME Bank", info.Organization)
	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "121000248", info.BankID)
	assert.Equal(t, "123456789", info.AccountID)
	assert.Equal(t, "CHECKING", info.AccountType)
	assert.Equal(t, models.QfxDate("20251201"), info.Start)
	assert.Equal(t, models.QfxDate("20251231"), info.End)
	assert.Equal(t, models.QfxDate("20251231"), info.BalanceAsOf)
	assert.Equal(t, "2450.10", info.LedgerBalance.String())
	assert.Equal(t, 1, info.Transactions)
}

func TestParser_StatementInfoCreditCard(t *testing.T) {
	p, _ := newTestParser()

	info, err := p.StatementInfo(xmlCreditCardStatement)
	require.NoError(t, err)
	assert.Equal(t, models.StatementKindCreditCard, info.Kind)
	assert.Empty(t, info.BankID)
	assert.True(t, info.LedgerBalance.IsZero())
	assert.Equal(t, 1, info.Transactions)
}

func TestParser_StatementInfoMatchesParsedStatement(t *testing.T) {
	content := `<?xml version="1.0"?>
<OFX>
<BANKMSGSRSV1><STMTTRNRS><STMTRS>
<CURDEF>CHF</CURDEF>
<BANKACCTFROM><BANKID>100</BANKID><ACCTID>bank-acct</ACCTID><ACCTTYPE>SAVINGS</ACCTTYPE></BANKACCTFROM>
<BANKTRANLIST><DTSTART>20251201</DTSTART><DTEND>20251231</DTEND></BANKTRANLIST>
<LEDGERBAL><BALAMT>10.00</BALAMT><DTASOF>20251231</DTASOF></LEDGERBAL>
</STMTRS></STMTTRNRS></BANKMSGSRSV1>
<CREDITCARDMSGSRSV1><CCSTMTTRNRS><CCSTMTRS>
<CURDEF>EUR</CURDEF>
<CCACCTFROM><ACCTID>card-acct</ACCTID></CCACCTFROM>
<BANKTRANLIST><DTSTART>20251101</DTSTART><DTEND>20251130</DTEND>
<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><DTPOSTED>20251115</DTPOSTED><TRNAMT>-5.00</TRNAMT><FITID>card</FITID></STMTTRN>
</BANKTRANLIST>
<LEDGERBAL><BALAMT>-99.90</BALAMT><DTASOF>20251130</DTASOF></LEDGERBAL>
</CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1>
</OFX>`

	p, _ := newTestParser()
	transactions, err := p.Parse(content)
	require.NoError(t, err)

	info, err := p.StatementInfo(content)
	require.NoError(t, err)
	assert.Equal(t, models.StatementKindBank, info.Kind)
	assert.Equal(t, len(transactions), info.Transactions)
	assert.Equal(t, 0, info.Transactions)
	assert.Equal(t, "CHF", info.Currency)
	assert.Equal(t, "bank-acct", info.AccountID)
	assert.Equal(t, "SAVINGS", info.AccountType)
	assert.Equal(t, models.QfxDate("20251201"), info.Start)
	assert.Equal(t, "10.00", info.LedgerBalance.String())
	assert.Equal(t, models.QfxDate("20251231"), info.BalanceAsOf)
}

func TestParser_StatementInfoCreditCardAccount(t *testing.T) {
	content := `<?xml version="1.0"?>
<OFX><CREDITCARDMSGSRSV1><CCSTMTTRNRS><CCSTMTRS>
<CURDEF>EUR</CURDEF>
<CCACCTFROM><ACCTID>4111</ACCTID></CCACCTFROM>
<BANKTRANLIST>
<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><DTPOSTED>20251115</DTPOSTED><TRNAMT>-5.00</TRNAMT>
<BANKACCTTO><BANKID>200</BANKID><ACCTID>payee</ACCTID></BANKACCTTO></STMTTRN>
</BANKTRANLIST>
</CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1></OFX>`

	p, _ := newTestParser()
	info, err := p.StatementInfo(content)
	require.NoError(t, err)
	assert.Equal(t, "4111", info.AccountID)
	assert.Empty(t, info.BankID)
	assert.Equal(t, "EUR", info.Currency)
	assert.Equal(t, 1, info.Transactions)
}

func TestParser_StatementInfoErrors(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.StatementInfo("no markup at all")
	assert.ErrorIs(t, err, parsererror.ErrParseFailed)

	_, err = p.StatementInfo("<?xml version=\"1.0\"?><OFX><SIGNONMSGSRSV1></SIGNONMSGSRSV1></OFX>")
	assert.ErrorIs(t, err, parsererror.ErrParseFailed)
}
