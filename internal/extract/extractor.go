// Package extract turns uploaded PDF and CSV bytes into plain text for
// prompting, and CSV bytes into header-keyed rows for import.
package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"bloom/internal/domain"
	"bloom/internal/logger"
)

// MaxPromptRows caps how many CSV records (header included) are rendered
// into prompt text.
const MaxPromptRows = 50

// PDFDocument is an opened PDF.
type PDFDocument interface {
	NumPages() int
	// PageText returns the plain text of page i, 1-indexed.
	PageText(i int) (string, error)
}

// PDFBackend opens PDF bytes.
type PDFBackend interface {
	Open(data []byte) (PDFDocument, error)
}

// Extractor implements port.TextExtractor. It never touches the filesystem.
type Extractor struct {
	pdf     PDFBackend
	maxRows int
}

// NewExtractor creates an Extractor. A nil backend disables PDF support and
// PDF uploads fail with domain.ErrDependencyMissing.
func NewExtractor(pdf PDFBackend) *Extractor {
	return &Extractor{pdf: pdf, maxRows: MaxPromptRows}
}

// FileTypeOf resolves the upload format from the filename extension,
// case-insensitively.
func FileTypeOf(filename string) (domain.FileType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	ft, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFormat
	}
	return ft, nil
}

// Extract returns the plain text of a PDF or CSV upload.
func (e *Extractor) Extract(data []byte, filename string) (string, error) {
	ft, err := FileTypeOf(filename)
	if err != nil {
		return "", err
	}
	switch ft {
	case domain.FileTypePDF:
		return e.pdfText(data)
	case domain.FileTypeCSV:
		return e.csvText(data), nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

func (e *Extractor) pdfText(data []byte) (string, error) {
	if e.pdf == nil {
		return "", domain.ErrDependencyMissing
	}
	doc, err := e.pdf.Open(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}

	n := doc.NumPages()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			logger.Get().Debug("pdf page unreadable, treating as empty",
				zap.Int("page", i), zap.Error(err))
			text = ""
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n\n"), nil
}

func (e *Extractor) csvText(data []byte) string {
	text := Decode(data)

	r := newCSVReader(text)
	lines := make([]string, 0, e.maxRows)
	for len(lines) < e.maxRows {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return text
		}
		lines = append(lines, strings.Join(record, ", "))
	}
	return strings.Join(lines, "\n")
}

// ReadRows parses an entire CSV upload into its header and data rows keyed
// by header name. A record that fails to parse is returned as a nil row so
// callers can count it. Records shorter than the header leave the missing
// columns empty; cells beyond the header are dropped. Repeated header names
// are suffixed, so "Amount, Amount" keys as "Amount" and "Amount (2)".
func (e *Extractor) ReadRows(data []byte) ([]string, []domain.RawRow, error) {
	r := newCSVReader(Decode(data))

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading csv header: %v", domain.ErrUnreadableFile, err)
	}
	header = uniqueHeader(header)

	var rows []domain.RawRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rows = append(rows, nil)
			continue
		}
		row := make(domain.RawRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// uniqueHeader trims header names and renames repeats. The first occurrence
// keeps its name; later ones get the lowest free " (n)" suffix from 2 up.
func uniqueHeader(header []string) []string {
	seen := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		seen[header[i]] = true
	}
	used := make(map[string]bool, len(header))
	for i, name := range header {
		if !used[name] {
			used[name] = true
			continue
		}
		n := 2
		candidate := fmt.Sprintf("%s (%d)", name, n)
		for used[candidate] || seen[candidate] {
			n++
			candidate = fmt.Sprintf("%s (%d)", name, n)
		}
		header[i] = candidate
		used[candidate] = true
	}
	return header
}

// Decode converts upload bytes to a string, stripping a UTF-8 byte order mark
// and replacing invalid bytes with U+FFFD.
func Decode(data []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

func newCSVReader(text string) *csv.Reader {
	r := csv.NewReader(bytes.NewReader([]byte(text)))
	r.FieldsPerRecord = -1
	return r
}
