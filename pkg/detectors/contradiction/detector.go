package contradiction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/detectors"
)

var (
	yearPattern     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	numberPattern   = regexp.MustCompile(`\b\d+\b`)
	introducedAt    = regexp.MustCompile(`\b(?:` + startVerbs + `)\b[^.!?]*?(\d{4})`)
	activeSince     = regexp.MustCompile(`\bsince\b[^.!?]*?(\d{4})`)
	startVerbRe     = regexp.MustCompile(`\b(?:` + startVerbs + `)\b`)
	continuityRe    = regexp.MustCompile(`\b(?:` + continuityVerbs + `)\b`)
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

type Config struct {
	// YearGap is the maximum unexplained span, in years, between a start
	// date and a continuity date before the timeline is flagged.
	YearGap int `mapstructure:"year_gap"`
	// MagnitudeRatio is the factor between two quotes of the same numeric
	// entity that counts as conflicting.
	MagnitudeRatio float64  `mapstructure:"magnitude_ratio"`
	OpenTerms      []string `mapstructure:"open_terms"`
	ClosedTerms    []string `mapstructure:"closed_terms"`
}

// Detector finds logical contradictions inside a single response: timeline
// conflicts, open-versus-closed status statements, and numeric values quoted
// an order of magnitude apart.
type Detector struct {
	logger         *logrus.Logger
	yearGap        int
	magnitudeRatio float64
	openRe         *regexp.Regexp
	closedRe       *regexp.Regexp
}

func NewDetector(cfg Config, logger *logrus.Logger) (*Detector, error) {
	if cfg.YearGap <= 0 {
		cfg.YearGap = 10
	}
	if cfg.MagnitudeRatio <= 0 {
		cfg.MagnitudeRatio = 10
	}
	openTerms := cfg.OpenTerms
	if len(openTerms) == 0 {
		openTerms = defaultOpenTerms
	}
	closedTerms := cfg.ClosedTerms
	if len(closedTerms) == 0 {
		closedTerms = defaultClosedTerms
	}

	openRe, err := termAlternation(openTerms)
	if err != nil {
		return nil, fmt.Errorf("invalid open term: %w", err)
	}
	closedRe, err := termAlternation(closedTerms)
	if err != nil {
		return nil, fmt.Errorf("invalid closed term: %w", err)
	}

	return &Detector{
		logger:         logger,
		yearGap:        cfg.YearGap,
		magnitudeRatio: cfg.MagnitudeRatio,
		openRe:         openRe,
		closedRe:       closedRe,
	}, nil
}

func (d *Detector) Detect(response string) detectors.Signal {
	lowered := strings.ToLower(response)

	if sig := d.detectTimelineConflict(lowered); sig.Flagged {
		d.logger.WithField("reason", sig.Reason).Debug("internal contradiction detected")
		return sig
	}
	if d.openRe.MatchString(lowered) && d.closedRe.MatchString(lowered) {
		d.logger.Debug("contradictory status statements detected")
		return detectors.Signal{Flagged: true, Reason: "Contradictory status statements"}
	}
	if d.detectNumericConflict(lowered) {
		d.logger.Debug("conflicting numerical values detected")
		return detectors.Signal{Flagged: true, Reason: "Conflicting numerical values"}
	}

	return detectors.Signal{}
}

func (d *Detector) detectTimelineConflict(lowered string) detectors.Signal {
	years := yearPattern.FindAllString(lowered, -1)
	if len(years) < 2 {
		return detectors.Signal{}
	}

	// Something introduced after the date it has been active since.
	introduced := introducedAt.FindStringSubmatch(lowered)
	active := activeSince.FindStringSubmatch(lowered)
	if introduced != nil && active != nil {
		introducedYear, err1 := strconv.Atoi(introduced[1])
		activeYear, err2 := strconv.Atoi(active[1])
		if err1 == nil && err2 == nil && introducedYear > activeYear {
			return detectors.Signal{
				Flagged: true,
				Reason:  fmt.Sprintf("Timeline conflict: introduced in %d but active since %d", introducedYear, activeYear),
			}
		}
	}

	// Large unexplained gap between start and continuity dates.
	minYear, maxYear := yearBounds(years)
	if maxYear-minYear > d.yearGap &&
		startVerbRe.MatchString(lowered) && continuityRe.MatchString(lowered) {
		return detectors.Signal{
			Flagged: true,
			Reason:  "Timeline inconsistency: large gap between referenced years",
		}
	}

	return detectors.Signal{}
}

// detectNumericConflict flags a sentence quoting the same entity with values
// at least magnitudeRatio apart.
func (d *Detector) detectNumericConflict(lowered string) bool {
	for _, sentence := range sentenceSplitRe.Split(lowered, -1) {
		nums := numberPattern.FindAllString(sentence, -1)
		if len(nums) < 2 {
			continue
		}
		minVal, maxVal := 0, 0
		first := true
		for _, raw := range nums {
			n, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			if first {
				minVal, maxVal = n, n
				first = false
				continue
			}
			if n < minVal {
				minVal = n
			}
			if n > maxVal {
				maxVal = n
			}
		}
		if !first && minVal > 0 && float64(maxVal) >= d.magnitudeRatio*float64(minVal) {
			return true
		}
	}
	return false
}

func yearBounds(years []string) (int, int) {
	minYear, maxYear := 0, 0
	for i, raw := range years {
		y, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if i == 0 {
			minYear, maxYear = y, y
			continue
		}
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	return minYear, maxYear
}

func termAlternation(terms []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(t)))
	}
	return regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
