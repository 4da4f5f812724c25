package csvparser

import (
	"errors"
	"testing"

	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,Type,Description,Amount,FITID,Memo
2025-12-26,DEBIT,Coffee Shop,-50.00,202512260,Morning coffee
2025-12-25,CREDIT,ACME Corp Payroll,1500.00,202512250,Salary deposit
`

func newTestParser() (*Parser, *logging.MockLogger) {
	mock := logging.NewMockLogger()
	return NewParser(mock), mock
}

func TestParser_IsSupported(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		expected bool
	}{
		{"csv extension and header", "test.csv", sampleCSV, true},
		{"upper case extension", "test.CSV", sampleCSV, true},
		{"no filename, header only decides", "", sampleCSV, true},
		{"wrong extension", "test.qfx", "", false},
		{"wrong extension with header", "test.txt", sampleCSV, false},
		{"invalid content", "", "invalid content", false},
		{"csv extension but empty", "test.csv", "", false},
		{"csv extension without headers", "test.csv", "random text", false},
		{"only date column", "", "Date,Type\n", false},
		{"header must be first line", "", "\nDate,Amount\n", false},
	}

	p, _ := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.IsSupported(tt.filename, tt.content))
		})
	}
}

func TestParser_Parse(t *testing.T) {
	p, mock := newTestParser()

	transactions, err := p.Parse(sampleCSV)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, models.CsvDate("2025-12-26"), first.Date)
	assert.Equal(t, "DEBIT", first.TrnType)
	assert.Equal(t, "Coffee Shop", first.Description)
	assert.Equal(t, "-50.00", first.Amount.StringFixed(2))
	assert.Equal(t, "202512260", first.FITID)
	assert.Equal(t, "Morning coffee", first.Memo)

	assert.Equal(t, "CREDIT", transactions[1].TrnType)
	assert.Equal(t, "ACME Corp Payroll", transactions[1].Description)
	assert.True(t, mock.HasEntry("DEBUG", "Parsed CSV statement"))
}

func TestParser_ParseOptionalColumnsAndOrder(t *testing.T) {
	content := "Type,Amount,Date\nDEBIT,-1.00,26/12/2025\nCREDIT,2.00,12/27/2025\n"

	p, _ := newTestParser()
	transactions, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, models.CsvDate("26/12/2025"), transactions[0].Date)
	assert.Empty(t, transactions[0].Description)
	assert.Empty(t, transactions[0].FITID)
	assert.Equal(t, models.CsvDate("12/27/2025"), transactions[1].Date)
}

func TestParser_ParseKeepsUnresolvableDates(t *testing.T) {
	p, _ := newTestParser()

	transactions, err := p.Parse("Date,Type,Amount\nsomeday,DEBIT,-1.00\n")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.CsvDate("someday"), transactions[0].Date)
}

func TestParser_ParseCustomDelimiter(t *testing.T) {
	p, _ := newTestParser()
	p.SetDelimiter(';')
	assert.Equal(t, ';', p.Delimiter())

	transactions, err := p.Parse("Date;Type;Description;Amount\n2025-12-26;DEBIT;Bakery, Main St;-3.20\n")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Bakery, Main St", transactions[0].Description)

	p.SetDelimiter(0)
	assert.Equal(t, ';', p.Delimiter())
}

func TestParser_ParseByteOrderMark(t *testing.T) {
	p, _ := newTestParser()

	transactions, err := p.Parse("\ufeff" + sampleCSV)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestParser_ParseEmpty(t *testing.T) {
	p, _ := newTestParser()

	transactions, err := p.Parse("")
	require.NoError(t, err)
	assert.Empty(t, transactions)

	transactions, err = p.Parse("Date,Type,Description,Amount,FITID,Memo\n")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParser_ParseErrors(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		invalidAmount bool
	}{
		{"invalid amount", "Date,Type,Amount\n2025-12-26,DEBIT,abc\n", true},
		{"currency symbol", "Date,Type,Amount\n2025-12-26,DEBIT,$5.00\n", true},
		{"amount on later row", "Date,Type,Amount\n2025-12-26,DEBIT,1.00\n2025-12-27,DEBIT,\n", true},
		{"ragged row", "Date,Type,Amount\n2025-12-26,DEBIT\n", false},
		{"missing type column", "Date,Amount\n2025-12-26,1.00\n", false},
	}

	p, _ := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, err := p.Parse(tt.content)
			assert.Nil(t, transactions)
			require.Error(t, err)
			assert.ErrorIs(t, err, parsererror.ErrParseFailed)
			assert.Equal(t, tt.invalidAmount, errors.Is(err, parsererror.ErrInvalidAmount))
			if !tt.invalidAmount {
				assert.Contains(t, err.Error(), ReasonDeserialize)
			}
		})
	}
}

func TestParser_ValidateFormat(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"valid", sampleCSV, true},
		{"header only", "Date,Type,Amount\n", false},
		{"missing type", "Date,Amount\n2025-12-26,1\n", false},
		{"ragged", "Date,Type,Amount\n1,2\n", false},
		{"empty", "", false},
	}

	p, _ := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := p.ValidateFormat(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}
