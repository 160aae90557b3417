// Package profile classifies a prompt/response pair by content domain and
// time sensitivity. Both are advisory inputs to trust scoring and policy
// threshold selection; neither feeds the risk score.
package profile

import (
	"regexp"
	"strings"
)

const (
	DomainGeneral = "general"
	DomainHealth  = "health"
	DomainFinance = "finance"
	DomainLegal   = "legal"
)

const (
	TimeSensitivityLow    = "LOW"
	TimeSensitivityMedium = "MEDIUM"
	TimeSensitivityHigh   = "HIGH"
)

var (
	compiledDomains = compileDomainPatterns()
	compiledHigh    = compileAll(timeSensitiveHigh)
	compiledMedium  = compileAll(timeSensitiveMedium)
	compiledLow     = compileAll(timeSensitiveLow)
)

// ClassifyDomain returns the domain with the most vocabulary matches in the
// combined prompt and response, or "general" on no matches.
func ClassifyDomain(prompt, response string) string {
	combined := strings.ToLower(prompt + " " + response)

	best := DomainGeneral
	bestScore := 0
	// Stable order so ties break deterministically.
	for _, domain := range []string{DomainHealth, DomainFinance, DomainLegal} {
		score := 0
		for _, re := range compiledDomains[domain] {
			if re.MatchString(combined) {
				score++
			}
		}
		if score > bestScore {
			best = domain
			bestScore = score
		}
	}
	return best
}

// TimeSensitivity rates how quickly the content goes stale. Defaults to
// MEDIUM when no temporal language is found.
func TimeSensitivity(prompt, response string) string {
	combined := strings.ToLower(prompt + " " + response)

	for _, re := range compiledHigh {
		if re.MatchString(combined) {
			return TimeSensitivityHigh
		}
	}
	for _, re := range compiledMedium {
		if re.MatchString(combined) {
			return TimeSensitivityMedium
		}
	}
	for _, re := range compiledLow {
		if re.MatchString(combined) {
			return TimeSensitivityLow
		}
	}
	return TimeSensitivityMedium
}

func compileDomainPatterns() map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(domainPatterns))
	for domain, patterns := range domainPatterns {
		out[domain] = compileAll(patterns)
	}
	return out
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
