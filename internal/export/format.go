// Package export renders imported transactions as downloadable CSV or XLSX.
package export

import (
	"fmt"
	"io"
	"strings"

	"bloom/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat reads a format name; empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: export format %q; allowed: csv, xlsx", domain.ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write renders txs in format f.
func Write(w io.Writer, f Format, txs []domain.Transaction) error {
	if f == FormatXLSX {
		return WriteXLSX(w, txs)
	}
	return WriteCSV(w, txs)
}
