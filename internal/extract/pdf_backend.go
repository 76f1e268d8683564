package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// LedongthucBackend reads PDFs with github.com/ledongthuc/pdf.
type LedongthucBackend struct{}

// NewPDFBackend returns the default PDF backend.
func NewPDFBackend() *LedongthucBackend {
	return &LedongthucBackend{}
}

func (LedongthucBackend) Open(data []byte) (doc PDFDocument, err error) {
	// the reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("opening pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	return &ledongthucDoc{r: r}, nil
}

type ledongthucDoc struct {
	r *pdf.Reader
}

func (d *ledongthucDoc) NumPages() int {
	return d.r.NumPage()
}

func (d *ledongthucDoc) PageText(i int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", i, r)
		}
	}()
	p := d.r.Page(i)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
