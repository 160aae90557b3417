package analyzer

import (
	"regexp"
	"strings"
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// ExtractClaims splits a response into atomic factual statements on
// sentence-terminal punctuation. Fragments shorter than ten characters and
// questions are discarded; they are not truth claims. Empty input yields an
// empty result.
func ExtractClaims(response string) []string {
	if strings.TrimSpace(response) == "" {
		return nil
	}

	var claims []string
	for _, segment := range sentencePattern.FindAllString(response, -1) {
		body := strings.TrimRight(segment, ".!?")
		terminator := segment[len(body):]
		cleaned := strings.TrimSpace(body)

		if len(cleaned) < 10 || strings.Contains(terminator, "?") {
			continue
		}
		claims = append(claims, cleaned)
	}
	return claims
}
