package extract

import (
	"strings"

	"immodok/internal/domain"
)

const (
	defaultVendor           = "UNK"
	vendorFallbackMaxLen    = 80
	vendorAliasConfidence   = 0.85
	vendorHeadingConfidence = 0.35
	vendorUnknownConfidence = 0.1
)

// resolveVendor checks the ordered alias table against the lower-cased
// head block; the first key contained in the head wins. Empty keys are
// skipped: a vacuous substring would claim every document, so such a
// table entry is treated as malformed rather than as a wildcard.
// Without an alias hit the first non-empty line serves as a
// low-confidence guess.
func resolveVendor(lines []string, head string, aliases []domain.VendorAlias) (string, float64) {
	for _, a := range aliases {
		if a.Key == "" {
			continue
		}
		if strings.Contains(head, strings.ToLower(a.Key)) {
			return a.Vendor, vendorAliasConfidence
		}
	}

	if len(lines) > 0 {
		vendor := lines[0]
		if r := []rune(vendor); len(r) > vendorFallbackMaxLen {
			vendor = string(r[:vendorFallbackMaxLen])
		}
		return vendor, vendorHeadingConfidence
	}
	return defaultVendor, vendorUnknownConfidence
}
