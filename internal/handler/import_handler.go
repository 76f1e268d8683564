package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bloom/internal/export"
	"bloom/internal/service"
)

// ImportHandler handles CSV transaction import.
type ImportHandler struct {
	csvImportService service.CSVImportService
	now              func() time.Time
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(csvImportService service.CSVImportService) *ImportHandler {
	return &ImportHandler{csvImportService: csvImportService, now: time.Now}
}

// ImportCSV handles POST /bloomLogic/importCSV
// @Summary Import transactions from CSV
// @Description Validates a CSV with the model, maps its columns and returns the valid transactions.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} domain.ImportResult "Imported transactions"
// @Failure 400 {object} ErrorResponse "Missing file, not a CSV, irrelevant or invalid data"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "API key not configured"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/importCSV [post]
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	input, closeFile, ok := uploadFromForm(c)
	if !ok {
		return
	}
	defer closeFile()

	res, err := h.csvImportService.Import(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// Export handles POST /bloomLogic/importCSV/export
// @Summary Import a CSV and download the cleaned transactions
// @Description Runs the import pipeline and returns the valid transactions as CSV or XLSX.
// @Tags import
// @Accept multipart/form-data
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "CSV file"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file "Transactions export"
// @Failure 400 {object} ErrorResponse "Missing file, bad format, irrelevant or invalid data"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/importCSV/export [post]
func (h *ImportHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	input, closeFile, ok := uploadFromForm(c)
	if !ok {
		return
	}
	defer closeFile()

	res, err := h.csvImportService.Import(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, res.Transactions); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(input.Filename, format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Skipped-Rows", fmt.Sprint(res.SkippedRows))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
