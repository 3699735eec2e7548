package extract

import "strings"

// DefaultBuildingKeywords flag lines that likely reference a managed
// property. Tunable via configuration.
var DefaultBuildingKeywords = []string{
	"objekt",
	"weg",
	"liegenschaft",
	"baustelle",
	"leistungsort",
	"adresse",
}

const (
	// DefaultBuildingLookahead is how many lines after the keyword line
	// join the candidate; addresses usually continue below the label.
	DefaultBuildingLookahead = 2

	buildingCandidateMaxLen = 400
)

func findBuildingCandidate(lines []string, keywords []string, lookahead int) (*string, float64) {
	for i, line := range lines {
		lower := strings.ToLower(line)
		hit := false
		for _, kw := range keywords {
			if kw != "" && strings.Contains(lower, kw) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}

		chunk := []string{line}
		for j := 1; j <= lookahead; j++ {
			if i+j < len(lines) {
				chunk = append(chunk, lines[i+j])
			}
		}
		candidate := strings.Join(chunk, " ")
		if r := []rune(candidate); len(r) > buildingCandidateMaxLen {
			candidate = string(r[:buildingCandidateMaxLen])
		}
		return &candidate, 0.55
	}
	return nil, 0.15
}
