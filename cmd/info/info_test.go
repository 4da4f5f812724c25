package info

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/bank-statement/internal/common"
	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQFX = `<?xml version="1.0" encoding="UTF-8"?>
<OFX>
  <SIGNONMSGSRSV1><SONRS><FI><ORG>Test Bank</ORG></FI></SONRS></SIGNONMSGSRSV1>
  <BANKMSGSRSV1>
    <STMTTRNRS>
      <STMTRS>
        <CURDEF>CHF</CURDEF>
        <BANKACCTFROM><BANKID>123</BANKID><ACCTID>987654</ACCTID><ACCTTYPE>CHECKING</ACCTTYPE></BANKACCTFROM>
        <BANKTRANLIST>
          <DTSTART>20251201</DTSTART>
          <DTEND>20251231</DTEND>
          <STMTTRN>
            <TRNTYPE>DEBIT</TRNTYPE>
            <DTPOSTED>20251226</DTPOSTED>
            <TRNAMT>-50.00</TRNAMT>
            <FITID>1</FITID>
          </STMTTRN>
        </BANKTRANLIST>
        <LEDGERBAL><BALAMT>1234.50</BALAMT><DTASOF>20251231</DTASOF></LEDGERBAL>
      </STMTRS>
    </STMTTRNRS>
  </BANKMSGSRSV1>
</OFX>`

func TestInfoCommand_Metadata(t *testing.T) {
	assert.Equal(t, "info", Cmd.Use)
	assert.Contains(t, Cmd.Short, "QFX/OFX statement")
	assert.NotNil(t, Cmd.RunE)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.qfx")
	require.NoError(t, os.WriteFile(path, []byte(sampleQFX), 0600))
	d := factory.NewDispatcher(logging.NewMockLogger())

	var out bytes.Buffer
	require.NoError(t, Run(d, path, "", common.OutputYAML, &out))
	assert.Contains(t, out.String(), "kind: bank")
	assert.Contains(t, out.String(), "organization: Test Bank")
	assert.Contains(t, out.String(), "account_id:")
	assert.Contains(t, out.String(), "987654")
	assert.Contains(t, out.String(), "transactions: 1")
	assert.Contains(t, out.String(), `ledger_balance: "1234.50"`)

	out.Reset()
	require.NoError(t, Run(d, path, "", common.OutputJSON, &out))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "CHF", decoded["currency"])
	assert.Equal(t, "1234.50", decoded["ledger_balance"])
}

func TestRun_CSVHasNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Type,Description,Amount\n2025-01-02,DEBIT,x,1.00\n"), 0600))

	var out bytes.Buffer
	err := Run(factory.NewDispatcher(logging.NewMockLogger()), path, "", common.OutputYAML, &out)
	assert.True(t, errors.Is(err, parsererror.ErrUnsupportedFormat))
}
