package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bloom/internal/domain"
	"bloom/internal/handler"
	"bloom/mocks"
)

var sampleImport = &domain.ImportResult{
	Success: true,
	Message: "Successfully imported 2 transactions (1 rows skipped)",
	Transactions: []domain.Transaction{
		{TransactionName: "Coffee", Amount: "4.50", TransactionType: "Expense", Date: "2024-01-02", PaymentMethod: "Card"},
		{TransactionName: "Salary", Amount: "3000", TransactionType: "Income", Date: "2024-01-01"},
	},
	TotalRows:   3,
	ValidRows:   2,
	SkippedRows: 1,
}

func newImportHandler() (*handler.ImportHandler, *mocks.MockCSVImportService) {
	mockSvc := new(mocks.MockCSVImportService)
	return handler.NewImportHandler(mockSvc), mockSvc
}

func TestImportHandler_ImportCSV_Success(t *testing.T) {
	h, mockSvc := newImportHandler()
	mockSvc.On("Import", mock.Anything, mock.Anything).Return(sampleImport, nil)

	req := multipartRequest(t, "/bloomLogic/importCSV", "bank.csv", []byte("Name,Amount\n"), nil)
	w := serve(req, h.ImportCSV)

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.ValidRows)
	assert.Equal(t, 1, resp.SkippedRows)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, "Coffee", resp.Transactions[0].TransactionName)
}

func TestImportHandler_ImportCSV_Irrelevant(t *testing.T) {
	h, mockSvc := newImportHandler()
	mockSvc.On("Import", mock.Anything, mock.Anything).Return(nil,
		fmt.Errorf("%w: the file does not contain financial transactions: it is a recipe list", domain.ErrValidationFailure))

	req := multipartRequest(t, "/bloomLogic/importCSV", "recipes.csv", []byte("dish,minutes\n"), nil)
	w := serve(req, h.ImportCSV)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)
	assert.Contains(t, resp.Detail, "recipe list")
}

func TestImportHandler_ImportCSV_MissingFile(t *testing.T) {
	h, _ := newImportHandler()

	req := multipartRequest(t, "/bloomLogic/importCSV", "", nil, nil)
	w := serve(req, h.ImportCSV)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FILE", decodeError(t, w).Code)
}

func TestImportHandler_Export_CSV(t *testing.T) {
	h, mockSvc := newImportHandler()
	mockSvc.On("Import", mock.Anything, mock.Anything).Return(sampleImport, nil)

	req := multipartRequest(t, "/bloomLogic/importCSV/export", "bank.csv", []byte("Name,Amount\n"), nil)
	w := serve(req, h.Export)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"bank_")
	assert.Equal(t, "1", w.Header().Get("X-Skipped-Rows"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\ufeff"))
	assert.Contains(t, body, "Coffee,4.50,Expense,2024-01-02,,Card")
}

func TestImportHandler_Export_XLSX(t *testing.T) {
	h, mockSvc := newImportHandler()
	mockSvc.On("Import", mock.Anything, mock.Anything).Return(sampleImport, nil)

	req := multipartRequest(t, "/bloomLogic/importCSV/export?format=xlsx", "bank.csv", []byte("Name,Amount\n"), nil)
	w := serve(req, h.Export)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Salary", rows[2][0])
}

func TestImportHandler_Export_BadFormat(t *testing.T) {
	h, mockSvc := newImportHandler()

	req := multipartRequest(t, "/bloomLogic/importCSV/export?format=pdf", "bank.csv", []byte("Name\n"), nil)
	w := serve(req, h.Export)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_FORMAT", decodeError(t, w).Code)
	mockSvc.AssertNotCalled(t, "Import", mock.Anything, mock.Anything)
}
