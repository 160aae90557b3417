package analyzer

import (
	"regexp"

	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

// Hedging language lowers a claim's confidence; the reduction is capped so
// heavy hedging cannot zero out an otherwise supported claim.
var hedgingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmay\b`),
	regexp.MustCompile(`(?i)\bmight\b`),
	regexp.MustCompile(`(?i)\bcould\b`),
	regexp.MustCompile(`(?i)\bpossibly\b`),
	regexp.MustCompile(`(?i)\bperhaps\b`),
	regexp.MustCompile(`(?i)\bprobably\b`),
	regexp.MustCompile(`(?i)\blikely\b`),
	regexp.MustCompile(`(?i)\bseems?\b`),
	regexp.MustCompile(`(?i)\bappears?\b`),
	regexp.MustCompile(`(?i)\bsuggests?\b`),
	regexp.MustCompile(`(?i)\bindicates?\b`),
	regexp.MustCompile(`(?i)\bI think\b`),
	regexp.MustCompile(`(?i)\bI believe\b`),
}

var (
	specificYearRe    = regexp.MustCompile(`\b\d{4}\b`)
	specificPercentRe = regexp.MustCompile(`\b\d+(\.\d+)?%`)
	specificMeasureRe = regexp.MustCompile(`(?i)\b\d+\s*(meters?|km|miles?|feet)\b`)
	entityRe          = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

const (
	baseConfidence    = 0.5
	shortClaimLength  = 20
	maxHedgingPenalty = 0.15
	perHedgePenalty   = 0.05
	shortClaimPenalty = 0.05
	specificsBonus    = 0.10
	specificsUnproven = 0.05
	supportedBonus    = 0.35
	contradictedMalus = 0.40
	unverifiedMalus   = 0.10
)

// ClaimConfidence scores a single claim on a 0-1 scale from its grounding
// verdict, hedging language, specificity and length.
func ClaimConfidence(text string, status analysis.RAGStatus) float64 {
	confidence := baseConfidence

	switch status {
	case analysis.StatusSupported:
		confidence += supportedBonus
	case analysis.StatusContradicted:
		confidence -= contradictedMalus
	case analysis.StatusUnverified:
		confidence -= unverifiedMalus
	}

	hedges := 0
	for _, re := range hedgingPatterns {
		if re.MatchString(text) {
			hedges++
		}
	}
	if hedges > 0 {
		penalty := float64(hedges) * perHedgePenalty
		if penalty > maxHedgingPenalty {
			penalty = maxHedgingPenalty
		}
		confidence -= penalty
	}

	if hasSpecifics(text) {
		// Specifics strengthen a verified claim and weaken an unverified one.
		switch status {
		case analysis.StatusSupported:
			confidence += specificsBonus
		case analysis.StatusUnverified:
			confidence -= specificsUnproven
		}
	}

	if len(text) < shortClaimLength {
		confidence -= shortClaimPenalty
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

func hasSpecifics(text string) bool {
	return specificYearRe.MatchString(text) ||
		specificPercentRe.MatchString(text) ||
		specificMeasureRe.MatchString(text)
}

// LinkDependencies fills each claim's DependsOn with the indices of other
// claims that mention at least one of the same capitalized entities.
func LinkDependencies(claims []analysis.Claim) {
	entities := make([]map[string]struct{}, len(claims))
	for i, c := range claims {
		set := make(map[string]struct{})
		for _, e := range entityRe.FindAllString(c.Text, -1) {
			set[e] = struct{}{}
		}
		entities[i] = set
	}

	for i := range claims {
		var deps []int
		for j := range claims {
			if i == j {
				continue
			}
			if overlaps(entities[i], entities[j]) {
				deps = append(deps, j)
			}
		}
		claims[i].DependsOn = deps
	}
}

func overlaps(a, b map[string]struct{}) bool {
	for e := range a {
		if _, ok := b[e]; ok {
			return true
		}
	}
	return false
}
