// Package extract turns raw document text into typed fields with
// per-field confidence scores. Each extractor is an ordered rule list
// evaluated with first-match-wins semantics; confidences are heuristic
// self-assessments in [0,1], not probabilities.
package extract

import (
	"strings"

	"immodok/internal/domain"
)

// DefaultHeadLines is how many leading non-empty lines form the head
// block searched for vendor aliases.
const DefaultHeadLines = 30

// Options tune the line-oriented heuristics. Zero values fall back to
// the defaults.
type Options struct {
	HeadLines         int
	BuildingKeywords  []string
	BuildingLookahead int
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		HeadLines:         DefaultHeadLines,
		BuildingKeywords:  DefaultBuildingKeywords,
		BuildingLookahead: DefaultBuildingLookahead,
	}
}

// FieldExtractor composes the five field extractors.
type FieldExtractor struct {
	opts Options
}

// NewFieldExtractor creates a FieldExtractor, filling unset options
// with defaults.
func NewFieldExtractor(opts Options) *FieldExtractor {
	if opts.HeadLines <= 0 {
		opts.HeadLines = DefaultHeadLines
	}
	if len(opts.BuildingKeywords) == 0 {
		opts.BuildingKeywords = DefaultBuildingKeywords
	}
	if opts.BuildingLookahead <= 0 {
		opts.BuildingLookahead = DefaultBuildingLookahead
	}
	return &FieldExtractor{opts: opts}
}

// Extract runs all extractors over the document text and assembles the
// field bundle. Currency is fixed to EUR; there is no detection.
func (e *FieldExtractor) Extract(text string, vendors []domain.VendorAlias) domain.FieldBundle {
	lines := nonEmptyLines(text)
	head := headBlock(lines, e.opts.HeadLines)

	docType, docConf := classifyDocType(text)
	vendor, vendorConf := resolveVendor(lines, head, vendors)
	amount, amountConf := extractAmount(text)
	date, dateConf := extractDate(text)
	candidate, buildingConf := findBuildingCandidate(lines, e.opts.BuildingKeywords, e.opts.BuildingLookahead)

	return domain.FieldBundle{
		DocType:           docType,
		Vendor:            vendor,
		Amount:            amount,
		Currency:          "EUR",
		Date:              date,
		BuildingCandidate: candidate,
		DateConfidence:    dateConf,
		Confidence: domain.Confidence{
			DocType:  docConf,
			Vendor:   vendorConf,
			Amount:   amountConf,
			Building: buildingConf,
		},
	}
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func headBlock(lines []string, n int) string {
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.ToLower(strings.Join(lines, "\n"))
}
