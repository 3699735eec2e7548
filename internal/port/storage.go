package port

import "context"

// DocumentStore abstracts the content-addressed store for original
// document bytes. Keys are opaque file IDs generated by the caller.
type DocumentStore interface {
	Save(ctx context.Context, fileID string, data []byte) error
	Load(ctx context.Context, fileID string) ([]byte, error)
	Delete(ctx context.Context, fileID string) error
}
