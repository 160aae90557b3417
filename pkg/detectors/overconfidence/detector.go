package overconfidence

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/detectors"
)

// Quantifiable-claim markers: a four-digit year, a percentage, a currency
// amount. These are fixed, the lexicons around them are not.
var (
	yearPattern     = regexp.MustCompile(`\b\d{4}\b`)
	percentPattern  = regexp.MustCompile(`\b\d+(\.\d+)?%`)
	currencyPattern = regexp.MustCompile(`\$\d+`)
)

type Config struct {
	CertaintyMarkers []string `mapstructure:"certainty_markers"`
	SensitiveTerms   []string `mapstructure:"sensitive_terms"`
}

// Detector flags absolute-certainty language, and quantified claims made in
// sensitive domains. Deterministic, no learned component.
type Detector struct {
	logger    *logrus.Logger
	certainty []*regexp.Regexp
	sensitive []*regexp.Regexp
}

func NewDetector(cfg Config, logger *logrus.Logger) (*Detector, error) {
	markers := cfg.CertaintyMarkers
	if len(markers) == 0 {
		markers = defaultCertaintyMarkers
	}
	terms := cfg.SensitiveTerms
	if len(terms) == 0 {
		terms = defaultSensitiveTerms
	}

	certainty, err := compileAll(markers)
	if err != nil {
		return nil, fmt.Errorf("invalid certainty marker: %w", err)
	}
	sensitive, err := compileAll(terms)
	if err != nil {
		return nil, fmt.Errorf("invalid sensitive term: %w", err)
	}

	return &Detector{
		logger:    logger,
		certainty: certainty,
		sensitive: sensitive,
	}, nil
}

// Detect scans the response case-insensitively for certainty markers, then
// for sensitive-domain vocabulary co-occurring with a quantifiable claim.
// The prompt contributes only to sensitive-domain detection.
func (d *Detector) Detect(prompt, response string) detectors.Signal {
	lowered := strings.ToLower(response)

	for _, re := range d.certainty {
		if re.MatchString(lowered) {
			d.logger.WithField("marker", re.String()).Debug("certainty language detected")
			return detectors.Signal{Flagged: true, Reason: reasonCertaintyLanguage}
		}
	}

	combined := strings.ToLower(prompt + " " + response)
	inSensitiveDomain := false
	for _, re := range d.sensitive {
		if re.MatchString(combined) {
			inSensitiveDomain = true
			break
		}
	}

	if inSensitiveDomain && hasQuantifiableClaim(response) {
		d.logger.Debug("quantified claim in sensitive domain detected")
		return detectors.Signal{Flagged: true, Reason: reasonSensitiveDomain}
	}

	return detectors.Signal{}
}

func hasQuantifiableClaim(response string) bool {
	return yearPattern.MatchString(response) ||
		percentPattern.MatchString(response) ||
		currencyPattern.MatchString(response)
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
