package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/extract"
	"bloom/internal/logger"
	"bloom/internal/port"
	"bloom/internal/prompt"
	"bloom/internal/reply"
	"bloom/internal/validator"
)

// CSVImportService turns an uploaded CSV into validated transactions.
type CSVImportService interface {
	Import(ctx context.Context, input UploadInput) (*domain.ImportResult, error)
}

type csvImportService struct {
	gateway   port.ModelGateway
	extractor port.TextExtractor
	maxUpload int64
}

// NewCSVImportService creates a new CSVImportService implementation.
func NewCSVImportService(
	gateway port.ModelGateway,
	extractor port.TextExtractor,
	maxUploadBytes int64,
) CSVImportService {
	return &csvImportService{
		gateway:   gateway,
		extractor: extractor,
		maxUpload: maxUploadBytes,
	}
}

func (s *csvImportService) Import(ctx context.Context, input UploadInput) (*domain.ImportResult, error) {
	ft, err := extract.FileTypeOf(input.Filename)
	if err != nil {
		return nil, err
	}
	if ft != domain.FileTypeCSV {
		return nil, domain.ErrUnsupportedFormat
	}

	data, err := readUpload(input, s.maxUpload)
	if err != nil {
		return nil, err
	}

	sample, err := s.extractor.Extract(data, input.Filename)
	if err != nil {
		return nil, err
	}

	raw, err := generate(ctx, s.gateway, prompt.CSVValidation(sample))
	if err != nil {
		return nil, err
	}

	verdict := reply.ParseCSVValidation(raw)
	log := logger.Get().With(zap.String("filename", input.Filename))
	log.Info("csv validated",
		zap.String("status", string(verdict.Status)),
		zap.Int("mapped_fields", len(verdict.ColumnMapping)))

	mapping, err := validator.CheckImportable(verdict)
	if err != nil {
		return nil, err
	}

	_, rows, err := s.extractor.ReadRows(data)
	if err != nil {
		return nil, err
	}

	txs, skipped := validator.FilterTransactions(rows, mapping)
	if err := validator.RequireTransactions(txs, skipped); err != nil {
		return nil, err
	}

	log.Info("csv imported",
		zap.Int("total_rows", len(rows)),
		zap.Int("valid_rows", len(txs)),
		zap.Int("skipped_rows", skipped))

	return &domain.ImportResult{
		Success:      true,
		Message:      importMessage(len(txs), skipped),
		Transactions: txs,
		TotalRows:    len(rows),
		ValidRows:    len(txs),
		SkippedRows:  skipped,
	}, nil
}

func importMessage(valid, skipped int) string {
	if skipped == 0 {
		return fmt.Sprintf("Successfully imported %d transactions", valid)
	}
	return fmt.Sprintf("Successfully imported %d transactions (%d rows skipped)", valid, skipped)
}
