package grounding

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Content words shorter than this carry no grounding signal.
const minWordLength = 4

type Config struct {
	// CoverageThreshold is the fraction of a claim's content words that must
	// appear in the retrieved context before the claim counts as grounded.
	CoverageThreshold float64 `mapstructure:"coverage_threshold"`
	// NegationWindow is the number of characters inspected on each side of a
	// matched term for negation markers.
	NegationWindow  int      `mapstructure:"negation_window"`
	NegationMarkers []string `mapstructure:"negation_markers"`
}

// Verifier checks each extracted claim against the concatenated retrieved
// context. SUPPORTED means enough of the claim's vocabulary appears without
// nearby negation; CONTRADICTED means it appears next to negation markers;
// UNVERIFIED means the context does not cover the claim, which is not the
// same as the claim being false.
type Verifier struct {
	logger     *logrus.Logger
	threshold  float64
	window     int
	negationRe *regexp.Regexp
}

func NewVerifier(cfg Config, logger *logrus.Logger) (*Verifier, error) {
	if cfg.CoverageThreshold <= 0 {
		cfg.CoverageThreshold = 0.5
	}
	if cfg.NegationWindow <= 0 {
		cfg.NegationWindow = 50
	}
	markers := cfg.NegationMarkers
	if len(markers) == 0 {
		markers = defaultNegationMarkers
	}

	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(m)))
	}
	negationRe, err := regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("invalid negation marker: %w", err)
	}

	return &Verifier{
		logger:     logger,
		threshold:  cfg.CoverageThreshold,
		window:     cfg.NegationWindow,
		negationRe: negationRe,
	}, nil
}

// Verify attaches a RAGStatus to every claim. With no retrieved context at
// all, every claim is UNVERIFIED.
func (v *Verifier) Verify(claims []string, docs []analysis.Document) []analysis.Claim {
	out := make([]analysis.Claim, 0, len(claims))

	if len(docs) == 0 {
		for _, c := range claims {
			out = append(out, analysis.Claim{Text: c, RAGStatus: analysis.StatusUnverified})
		}
		return out
	}

	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(doc.Content)
		b.WriteString(" ")
	}
	ragText := strings.ToLower(b.String())

	supported, contradicted, unverified := 0, 0, 0
	for _, c := range claims {
		status := v.verifyOne(c, ragText)
		switch status {
		case analysis.StatusSupported:
			supported++
		case analysis.StatusContradicted:
			contradicted++
		default:
			unverified++
		}
		out = append(out, analysis.Claim{Text: c, RAGStatus: status})
	}

	if contradicted > 0 || unverified > 0 {
		v.logger.WithFields(logrus.Fields{
			"supported":    supported,
			"contradicted": contradicted,
			"unverified":   unverified,
		}).Debug("claims not fully grounded in retrieved context")
	}
	return out
}

func (v *Verifier) verifyOne(claim, ragText string) analysis.RAGStatus {
	words := contentWords(claim)
	if len(words) == 0 {
		return analysis.StatusUnverified
	}

	matched := make([]string, 0, len(words))
	for _, w := range words {
		if strings.Contains(ragText, w) {
			matched = append(matched, w)
		}
	}

	coverage := float64(len(matched)) / float64(len(words))
	if coverage < v.threshold {
		return analysis.StatusUnverified
	}

	for _, w := range matched {
		if v.negatedNearby(ragText, w) {
			return analysis.StatusContradicted
		}
	}
	return analysis.StatusSupported
}

func (v *Verifier) negatedNearby(ragText, word string) bool {
	pos := strings.Index(ragText, word)
	if pos < 0 {
		return false
	}
	start := pos - v.window
	if start < 0 {
		start = 0
	}
	end := pos + v.window
	if end > len(ragText) {
		end = len(ragText)
	}
	return v.negationRe.MatchString(ragText[start:end])
}

// contentWords returns the deduplicated lowercase words of the claim longer
// than three characters.
func contentWords(claim string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(claim), -1) {
		if len(w) < minWordLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
