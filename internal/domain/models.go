package domain

import (
	"github.com/shopspring/decimal"
)

// ObjectRecord is one canonical property in the object registry.
// Records are loaded fresh per processing run and never mutated.
type ObjectRecord struct {
	ObjectNumber string   `json:"object_number"`
	BuildingName string   `json:"building_name"`
	Street       string   `json:"street"`
	Zip          string   `json:"zip"`
	City         string   `json:"city"`
	Aliases      []string `json:"aliases"`
}

// VendorAlias maps a substring key found in a document's head block to a
// canonical vendor display name. Entry order is significant: the first
// key that matches wins.
type VendorAlias struct {
	Key    string
	Vendor string
}

// Confidence holds per-field extraction confidence scores in [0,1].
// These are heuristic self-assessments, not probabilities.
type Confidence struct {
	DocType  float64 `json:"doc_type"`
	Vendor   float64 `json:"vendor"`
	Amount   float64 `json:"amount"`
	Building float64 `json:"building"`
}

// FieldBundle is the typed result of running all field extractors over a
// document's text. Amount, Date and BuildingCandidate are nil when the
// corresponding extractor found nothing.
type FieldBundle struct {
	DocType           string
	Vendor            string
	Amount            *decimal.Decimal
	Currency          string
	Date              *string
	BuildingCandidate *string
	Confidence        Confidence
	// DateConfidence is diagnostic only; the response contract exposes
	// confidences for doc_type, vendor, amount and building.
	DateConfidence float64
}

// BuildingMatch is the outcome of resolving a building candidate against
// the object registry. ObjectNumber is non-nil only when the score
// reached the configured threshold or an alias matched exactly (score
// 100). On a near miss, MatchedLabel and Score still carry the best
// candidate for diagnostics.
type BuildingMatch struct {
	ObjectNumber *string `json:"object_number"`
	MatchedLabel *string `json:"matched_label"`
	Score        *int    `json:"score"`
}

// DebugInfo carries processing diagnostics attached to every result.
type DebugInfo struct {
	TextLayer   bool   `json:"text_layer"`
	TextLength  int    `json:"text_length"`
	PageCount   int    `json:"page_count"`
	ProcessedAt string `json:"processed_at"`
}

// ResultRecord is the externally visible result of processing one
// document. Built once per request, never mutated afterwards.
type ResultRecord struct {
	FileID            string        `json:"file_id"`
	DocType           string        `json:"doc_type"`
	Vendor            string        `json:"vendor"`
	Amount            *float64      `json:"amount"`
	Currency          string        `json:"currency"`
	Date              *string       `json:"date"`
	BuildingMatch     BuildingMatch `json:"building_match"`
	SuggestedFilename string        `json:"suggested_filename"`
	Confidence        Confidence    `json:"confidence"`
	Debug             DebugInfo     `json:"debug"`
}
