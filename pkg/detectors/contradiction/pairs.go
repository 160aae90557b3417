package contradiction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

// Antonym pairs checked across claims. A claim asserting one side while a
// sibling claim asserts the other is treated as a pairwise contradiction.
var antonymPairs = [][2]string{
	{"open", "closed"},
	{"alive", "dead"},
	{"positive", "negative"},
	{"increase", "decrease"},
	{"started", "stopped"},
}

var negationTokens = []string{"not ", "n't ", "never", "no "}

var antonymRes = compileAntonymPairs()

func compileAntonymPairs() [][2]*regexp.Regexp {
	out := make([][2]*regexp.Regexp, 0, len(antonymPairs))
	for _, pair := range antonymPairs {
		out = append(out, [2]*regexp.Regexp{
			regexp.MustCompile(`\b` + pair[0] + `\b`),
			regexp.MustCompile(`\b` + pair[1] + `\b`),
		})
	}
	return out
}

// DetectPairs compares every claim against every later claim and reports
// negation mismatches and antonym collisions. Indices refer to the input
// slice.
func (d *Detector) DetectPairs(claims []string) []analysis.ClaimConflict {
	var conflicts []analysis.ClaimConflict

	for i := 0; i < len(claims); i++ {
		for j := i + 1; j < len(claims); j++ {
			a := strings.ToLower(claims[i])
			b := strings.ToLower(claims[j])

			if negationMismatch(a, b) {
				conflicts = append(conflicts, analysis.ClaimConflict{
					First: i, Second: j, Reason: "Negation mismatch",
				})
			}

			for k, pair := range antonymRes {
				if pair[0].MatchString(a) && pair[1].MatchString(b) {
					conflicts = append(conflicts, analysis.ClaimConflict{
						First: i, Second: j,
						Reason: fmt.Sprintf("Antonym detected: %s vs %s", antonymPairs[k][0], antonymPairs[k][1]),
					})
				} else if pair[1].MatchString(a) && pair[0].MatchString(b) {
					conflicts = append(conflicts, analysis.ClaimConflict{
						First: i, Second: j,
						Reason: fmt.Sprintf("Antonym detected: %s vs %s", antonymPairs[k][1], antonymPairs[k][0]),
					})
				}
			}
		}
	}

	if len(conflicts) > 0 {
		d.logger.WithField("conflicts", len(conflicts)).Debug("pairwise claim contradictions detected")
	}
	return conflicts
}

// negationMismatch holds when one claim negates a subject the other claim
// states plainly: a negation token appears in the first claim only, and the
// second claim reuses vocabulary from the first claim's opening words.
func negationMismatch(a, b string) bool {
	negated := false
	for _, tok := range negationTokens {
		if strings.Contains(a, tok) && !strings.Contains(b, tok) {
			negated = true
			break
		}
	}
	if !negated {
		return false
	}

	opening := strings.Fields(a)
	if len(opening) > 5 {
		opening = opening[:5]
	}
	for _, w := range opening {
		if len(w) < 4 {
			continue
		}
		if strings.Contains(b, w) {
			return true
		}
	}
	return false
}
