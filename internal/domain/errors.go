package domain

import "errors"

var (
	ErrEmptyDocument       = errors.New("document payload is empty or too small")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEncryptedDocument   = errors.New("document is encrypted")
	ErrUnreadableDocument  = errors.New("document structure cannot be parsed")
	ErrStorageFailed       = errors.New("document upload to storage failed")
	ErrFileNotFound        = errors.New("file not found")
)
