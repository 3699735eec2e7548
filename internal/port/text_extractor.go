package port

import "context"

// TextExtraction is the text layer pulled out of a document.
type TextExtraction struct {
	// Text is the full text, pages joined with newlines. Pages whose
	// extraction failed contribute an empty string, not an error.
	Text      string
	PageCount int
}

// TextExtractor decodes raw document bytes into text. Implementations
// return domain.ErrEncryptedDocument for password-protected documents
// and domain.ErrUnreadableDocument for structurally broken ones.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*TextExtraction, error)
}
