package extract

import "regexp"

// Two fixed notations, checked in priority order: German dd.mm.yyyy
// document-wide first, ISO yyyy-mm-dd second.
var (
	dateGerman = regexp.MustCompile(`\b(\d{2})\.(\d{2})\.(\d{4})\b`)
	dateISO    = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

// extractDate returns the first matching date normalized to
// yyyy-mm-dd. Digit groups pass through without calendar validation:
// 31.02.2024 yields 2024-02-31. Rejecting such values would rename
// documents that today archive fine, so the grammar alone decides.
func extractDate(text string) (*string, float64) {
	if m := dateGerman.FindStringSubmatch(text); m != nil {
		d := m[3] + "-" + m[2] + "-" + m[1]
		return &d, 0.75
	}
	if m := dateISO.FindStringSubmatch(text); m != nil {
		d := m[1] + "-" + m[2] + "-" + m[3]
		return &d, 0.75
	}
	return nil, 0.1
}
