package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"immodok/internal/domain"
)

// DefaultThreshold is the minimum token-set score for a fuzzy match to
// resolve to an object number.
const DefaultThreshold = 90

// Matcher resolves a free-text building candidate against the object
// registry.
type Matcher struct {
	threshold int
}

// NewMatcher creates a Matcher. A non-positive threshold falls back to
// DefaultThreshold.
func NewMatcher(threshold int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Match runs the two-pass resolution: exact alias containment first
// (score fixed at 100, raw alias returned as label), then token-set
// fuzzy scoring over "building name + street" labels. Iteration order
// decides between equal candidates: the first alias hit and the first
// record to reach the best score win. Below the threshold the best
// label and score are still returned for diagnostics, with a nil
// object number.
func (m *Matcher) Match(candidate string, objects []domain.ObjectRecord) domain.BuildingMatch {
	candNorm := Normalize(candidate)
	if candNorm == "" || len(objects) == 0 {
		return domain.BuildingMatch{}
	}

	for i := range objects {
		o := &objects[i]
		for _, alias := range o.Aliases {
			if alias == "" {
				continue
			}
			aliasNorm := Normalize(alias)
			if aliasNorm != "" && strings.Contains(candNorm, aliasNorm) {
				score := 100
				label := alias
				num := o.ObjectNumber
				return domain.BuildingMatch{
					ObjectNumber: &num,
					MatchedLabel: &label,
					Score:        &score,
				}
			}
		}
	}

	bestScore := 0
	var bestLabel, bestNumber string
	scored := false
	for i := range objects {
		o := &objects[i]
		label := strings.TrimSpace(o.BuildingName + " " + o.Street)
		score := fuzzy.TokenSetRatio(candNorm, Normalize(label))
		if score > bestScore {
			bestScore = score
			bestLabel = label
			bestNumber = o.ObjectNumber
			scored = true
		}
	}

	result := domain.BuildingMatch{Score: &bestScore}
	if scored {
		result.MatchedLabel = &bestLabel
		if bestScore >= m.threshold {
			result.ObjectNumber = &bestNumber
		}
	}
	return result
}
