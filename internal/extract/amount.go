package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountToken matches a German-style decimal: dot as thousands
// separator, comma as decimal separator, exactly two decimal places.
const amountToken = `[0-9]{1,3}(?:\.[0-9]{3})*,[0-9]{2}`

// amountTriggers are checked in order; a token within 40 non-digit
// characters after a trigger counts as a candidate total.
var amountTriggers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)gesamtbetrag[^0-9]{0,40}(` + amountToken + `)`),
	regexp.MustCompile(`(?i)rechnungsbetrag[^0-9]{0,40}(` + amountToken + `)`),
	regexp.MustCompile(`(?i)zu\s+zahlen[^0-9]{0,40}(` + amountToken + `)`),
}

var (
	anyAmount      = regexp.MustCompile(`\b(` + amountToken + `)\b`)
	nonAmountChars = regexp.MustCompile(`[^0-9.,\-]`)
)

// ParseGermanAmount converts a locale-formatted monetary token like
// "1.234,56 €" into a decimal. Currency markers and stray characters
// are stripped first; if a comma is present, dots are treated as
// thousands separators. The second return is false when no value could
// be parsed; a bad token is simply not a candidate.
func ParseGermanAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "EUR", "")
	s = nonAmountChars.ReplaceAllString(s, "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// extractAmount runs the two-phase search: trigger-adjacent tokens
// first (last hit wins, totals sit near the footer; conflicting hits
// halve the confidence), then a document-wide scan taking the maximum
// token. A maximum shared by several lines signals ambiguity.
func extractAmount(text string) (*decimal.Decimal, float64) {
	var candidates []decimal.Decimal
	for _, rx := range amountTriggers {
		for _, m := range rx.FindAllStringSubmatch(text, -1) {
			if v, ok := ParseGermanAmount(m[1]); ok {
				candidates = append(candidates, v)
			}
		}
	}

	if len(candidates) > 0 {
		last := candidates[len(candidates)-1]
		conf := 0.9
		for _, c := range candidates {
			if !c.Equal(last) {
				conf = 0.6
				break
			}
		}
		return &last, conf
	}

	var all []decimal.Decimal
	for _, m := range anyAmount.FindAllStringSubmatch(text, -1) {
		if v, ok := ParseGermanAmount(m[1]); ok {
			all = append(all, v)
		}
	}
	if len(all) == 0 {
		return nil, 0.1
	}

	max := all[0]
	for _, v := range all[1:] {
		if v.GreaterThan(max) {
			max = v
		}
	}
	occurrences := 0
	for _, v := range all {
		if v.Equal(max) {
			occurrences++
		}
	}
	if occurrences == 1 {
		return &max, 0.35
	}
	return &max, 0.2
}
