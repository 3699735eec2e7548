// Package pdftext extracts the text layer from PDF bytes. It does not
// perform OCR: documents without an embedded text layer simply yield
// little or no text, which the pipeline reports via the text_layer
// diagnostic flag.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"immodok/internal/domain"
	"immodok/internal/port"
)

// Extractor implements port.TextExtractor for PDF documents.
type Extractor struct {
	conf *model.Configuration
}

// New creates an Extractor with relaxed structural validation, since
// scanned invoices frequently carry minor spec violations.
func New() *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Extractor{conf: conf}
}

// Extract decodes the PDF and returns its text, pages joined with
// newlines. Encrypted documents and documents whose structure cannot
// be parsed fail the whole call; a failure to extract text from an
// individual page degrades to an empty page.
func (e *Extractor) Extract(_ context.Context, data []byte) (*port.TextExtraction, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, domain.ErrEncryptedDocument
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	pctx, err := api.ReadContext(bytes.NewReader(data), e.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}
	if err := api.ValidateContext(pctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		sb.WriteString(pageText(reader, i))
		if i < numPages {
			sb.WriteString("\n")
		}
	}

	return &port.TextExtraction{
		Text:      sb.String(),
		PageCount: pctx.PageCount,
	}, nil
}

// pageText extracts one page row by row, words joined with spaces. The
// pdf library panics on some malformed content streams, so this
// recovers and degrades the page to empty text.
func pageText(r *pdf.Reader, n int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	page := r.Page(n)
	if page.V.IsNull() {
		return ""
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, row := range rows {
		words := make([]string, 0, len(row.Content))
		for _, word := range row.Content {
			words = append(words, word.S)
		}
		sb.WriteString(strings.Join(words, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
