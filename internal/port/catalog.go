package port

import (
	"context"

	"immodok/internal/domain"
)

// ObjectSource loads the canonical property registry. Called once per
// processing run so edits to the backing file take effect immediately.
type ObjectSource interface {
	LoadObjects(ctx context.Context) ([]domain.ObjectRecord, error)
}

// VendorSource loads the ordered vendor-alias table.
type VendorSource interface {
	LoadVendorAliases(ctx context.Context) ([]domain.VendorAlias, error)
}
