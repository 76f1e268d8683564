package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bloom/internal/domain"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{TransactionName: "Coffee", Amount: "3.50", TransactionType: "debit", Date: "2024-01-02", Description: "Morning, large", PaymentMethod: "card"},
		{TransactionName: "Salary", Amount: "2500", TransactionType: "credit", Date: "2024-01-01"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTransactions()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Transaction Name", "Amount", "Transaction Type", "Date", "Description", "Payment Method"}, rows[0])
	assert.Equal(t, []string{"Coffee", "3.50", "debit", "2024-01-02", "Morning, large", "card"}, rows[1])
	assert.Equal(t, []string{"Salary", "2500", "credit", "2024-01-01", "", ""}, rows[2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTransactions()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Transaction Name", rows[0][0])
	assert.Equal(t, "Payment Method", rows[0][5])
	assert.Equal(t, "Coffee", rows[1][0])
	assert.Equal(t, "3.50", rows[1][1])
	assert.Equal(t, "Salary", rows[2][0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_bank_export", SanitizeFilename("my bank export!!"))
	assert.Equal(t, "transactions", SanitizeFilename("%%%"))
	assert.Len(t, SanitizeFilename(string(bytes.Repeat([]byte("a"), 300))), 100)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "bank_jan_2025-03-09.xlsx", BuildFilename("bank jan.csv", FormatXLSX, now))
	assert.Equal(t, "transactions_2025-03-09.csv", BuildFilename(".csv", FormatCSV, now))
}
