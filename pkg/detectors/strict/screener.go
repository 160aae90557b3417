// Package strict screens prompt/response pairs against fixed high-risk
// phrase patterns. Violations are consumed by the enforcement policy; they
// never alter the weighted risk score.
package strict

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
)

type Violation struct {
	Pattern  string   `json:"pattern"`
	Severity Severity `json:"severity"`
}

type Config struct {
	HighPatterns   []string `mapstructure:"high_patterns"`
	MediumPatterns []string `mapstructure:"medium_patterns"`
}

type Screener struct {
	logger *logrus.Logger
	high   []*regexp.Regexp
	medium []*regexp.Regexp
}

func NewScreener(cfg Config, logger *logrus.Logger) (*Screener, error) {
	highSrc := cfg.HighPatterns
	if len(highSrc) == 0 {
		highSrc = defaultHighPatterns
	}
	mediumSrc := cfg.MediumPatterns
	if len(mediumSrc) == 0 {
		mediumSrc = defaultMediumPatterns
	}

	high, err := compileAll(highSrc)
	if err != nil {
		return nil, fmt.Errorf("invalid high severity pattern: %w", err)
	}
	medium, err := compileAll(mediumSrc)
	if err != nil {
		return nil, fmt.Errorf("invalid medium severity pattern: %w", err)
	}

	return &Screener{logger: logger, high: high, medium: medium}, nil
}

// Screen returns every violation found in the combined prompt and response.
func (s *Screener) Screen(prompt, response string) []Violation {
	text := strings.ToLower(prompt + " " + response)

	var violations []Violation
	for _, re := range s.high {
		if re.MatchString(text) {
			violations = append(violations, Violation{Pattern: re.String(), Severity: SeverityHigh})
		}
	}
	for _, re := range s.medium {
		if re.MatchString(text) {
			violations = append(violations, Violation{Pattern: re.String(), Severity: SeverityMedium})
		}
	}

	if len(violations) > 0 {
		s.logger.WithFields(logrus.Fields{
			"count": len(violations),
			"high":  HasHigh(violations),
		}).Warn("strict pattern violations detected")
	}
	return violations
}

// HasHigh reports whether any violation carries HIGH severity.
func HasHigh(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityHigh {
			return true
		}
	}
	return false
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
