package extract

import "regexp"

// docTypeRule is one entry in the ordered classification table.
type docTypeRule struct {
	pattern    *regexp.Regexp
	label      string
	confidence float64
}

// docTypeRules is evaluated top to bottom, first match wins. Order is
// significant: Rechnung outranks Angebot outranks Lieferschein when a
// document mentions more than one.
var docTypeRules = []docTypeRule{
	{regexp.MustCompile(`(?i)\brechnung\b`), "Rechnung", 0.9},
	{regexp.MustCompile(`(?i)\bangebot\b`), "Angebot", 0.85},
	{regexp.MustCompile(`(?i)\blieferschein\b`), "Lieferschein", 0.85},
}

const (
	defaultDocType           = "Dokument"
	defaultDocTypeConfidence = 0.3
)

func classifyDocType(text string) (string, float64) {
	for _, rule := range docTypeRules {
		if rule.pattern.MatchString(text) {
			return rule.label, rule.confidence
		}
	}
	return defaultDocType, defaultDocTypeConfidence
}
