package common

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/bank-statement/internal/config"
	"fjacquet/bank-statement/internal/container"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Date,Type,Description,Amount,FITID,Memo\n" +
	"2025-12-26,DEBIT,Coffee Shop,-50.00,202512260,Morning coffee\n"

func newTestContainer(t *testing.T) (*container.Container, *logging.MockLogger) {
	t.Helper()
	mock := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(config.Default(), mock)
	require.NoError(t, err)
	return c, mock
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestProcessFile_Stdout(t *testing.T) {
	c, mock := newTestContainer(t)
	input := writeInput(t, "export.csv", sampleCSV)

	var out bytes.Buffer
	count, err := ProcessFile(c, ProcessOptions{Input: input}, &out)
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "Date,Type,Amount,Payee,FITID,Status,Memo")
	assert.Contains(t, out.String(), "2025-12-26,DEBIT,-50.00,Coffee Shop,202512260,,Morning coffee")
	assert.True(t, mock.HasEntry("INFO", "Conversion completed successfully"))
}

func TestProcessFile_OutputFile(t *testing.T) {
	c, _ := newTestContainer(t)
	input := writeInput(t, "export.csv", sampleCSV)
	output := filepath.Join(t.TempDir(), "nested", "out.csv")

	var out bytes.Buffer
	count, err := ProcessFile(c, ProcessOptions{Input: input, Output: output, Format: "csv"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, out.String())
	assert.FileExists(t, output)
}

func TestProcessFile_Errors(t *testing.T) {
	c, _ := newTestContainer(t)

	tests := []struct {
		name     string
		opts     func(t *testing.T) ProcessOptions
		expected error
	}{
		{
			name:     "no input",
			opts:     func(t *testing.T) ProcessOptions { return ProcessOptions{} },
			expected: parsererror.ErrMissingInput,
		},
		{
			name: "unreadable input",
			opts: func(t *testing.T) ProcessOptions {
				return ProcessOptions{Input: filepath.Join(t.TempDir(), "missing.qfx")}
			},
			expected: parsererror.ErrReadContent,
		},
		{
			name: "unknown format",
			opts: func(t *testing.T) ProcessOptions {
				return ProcessOptions{Input: writeInput(t, "notes.txt", "hello")}
			},
			expected: parsererror.ErrUnsupportedFormat,
		},
		{
			name: "bad explicit format",
			opts: func(t *testing.T) ProcessOptions {
				return ProcessOptions{Input: writeInput(t, "export.csv", sampleCSV), Format: "pdf"}
			},
			expected: parsererror.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ProcessFile(c, tt.opts(t), &out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			assert.Empty(t, out.String())
		})
	}
}

func TestProcessFile_ValidationFailure(t *testing.T) {
	c, _ := newTestContainer(t)
	input := writeInput(t, "export.csv", "Date,Type,Description,Amount\n")

	var out bytes.Buffer
	_, err := ProcessFile(c, ProcessOptions{Input: input, Format: "csv", Validate: true}, &out)

	var invalid *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "csv", invalid.ExpectedFormat)
}

func TestResolveFormat(t *testing.T) {
	c, _ := newTestContainer(t)

	format, err := ResolveFormat(c.GetDispatcher(), "OFX", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.FormatQFX, format)

	format, err = ResolveFormat(c.GetDispatcher(), "", "export.csv", sampleCSV)
	require.NoError(t, err)
	assert.Equal(t, models.FormatCSV, format)
}
