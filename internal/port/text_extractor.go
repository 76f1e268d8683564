package port

import "bloom/internal/domain"

// TextExtractor turns uploaded file bytes into bounded plain text and tabular rows.
type TextExtractor interface {
	Extract(data []byte, filename string) (string, error)
	ReadRows(data []byte) ([]string, []domain.RawRow, error)
}
