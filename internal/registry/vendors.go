package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"immodok/internal/domain"
)

// FileVendorSource reads the vendor-alias table from a JSON object of
// substring-key → canonical vendor name.
type FileVendorSource struct {
	path string
}

// NewFileVendorSource creates a FileVendorSource for the given path.
func NewFileVendorSource(path string) *FileVendorSource {
	return &FileVendorSource{path: path}
}

// LoadVendorAliases parses the table walking the JSON token stream so
// that source order is preserved; resolution is first-match-wins, so a
// map would silently change which vendor wins.
func (s *FileVendorSource) LoadVendorAliases(_ context.Context) ([]domain.VendorAlias, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening vendor map: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading vendor map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("vendor map: expected a JSON object, got %v", tok)
	}

	var aliases []domain.VendorAlias
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading vendor map key: %w", err)
		}
		key, _ := keyTok.(string)

		var vendor string
		if err := dec.Decode(&vendor); err != nil {
			return nil, fmt.Errorf("reading vendor map value for %q: %w", key, err)
		}
		aliases = append(aliases, domain.VendorAlias{Key: key, Vendor: vendor})
	}
	return aliases, nil
}
