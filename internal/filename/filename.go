// Package filename synthesizes normalized archive filenames from the
// extracted fields and the building match.
package filename

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Parts are the ordered optional filename segments. ObjectNumber and
// Date are skipped when absent; DocType and Vendor are defaulted.
type Parts struct {
	ObjectNumber *string
	Date         *string
	DocType      string
	Vendor       string
	Amount       *decimal.Decimal
}

const (
	// DefaultDocType labels documents the classifier could not place.
	DefaultDocType = "Dokument"
	// DefaultVendor labels documents with no resolvable vendor.
	DefaultVendor = "UNK"
)

var (
	underscoreRun   = regexp.MustCompile(`_+`)
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9._\-äöüÄÖÜß,]`)
)

// Build joins the present parts with underscores and sanitizes the
// result: spaces to underscores, runs collapsed, characters outside
// the allow-list replaced, edges trimmed, ".pdf" appended unless the
// name already ends in it. Amounts render with two decimals and a
// comma separator ("1234,56").
func Build(p Parts) string {
	var parts []string

	if p.ObjectNumber != nil && *p.ObjectNumber != "" {
		parts = append(parts, *p.ObjectNumber)
	}
	if p.Date != nil && *p.Date != "" {
		parts = append(parts, *p.Date)
	}

	docType := p.DocType
	if docType == "" {
		docType = DefaultDocType
	}
	parts = append(parts, docType)

	vendor := p.Vendor
	if vendor == "" {
		vendor = DefaultVendor
	}
	parts = append(parts, vendor)

	if p.Amount != nil {
		parts = append(parts, strings.ReplaceAll(p.Amount.StringFixed(2), ".", ","))
	}

	name := strings.Join(parts, "_")
	name = strings.ReplaceAll(name, " ", "_")
	name = underscoreRun.ReplaceAllString(name, "_")
	name = disallowedChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
