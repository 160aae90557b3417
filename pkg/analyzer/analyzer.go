// Package analyzer orchestrates the risk-analysis pipeline: claim
// extraction, signal detection, weighted scoring and explanation
// generation. Analyze is pure, holds no mutable state across calls, and is
// safe for concurrent use.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/config"
	"github.com/VigilAI/VigilGate/pkg/detectors/contradiction"
	"github.com/VigilAI/VigilGate/pkg/detectors/grounding"
	"github.com/VigilAI/VigilGate/pkg/detectors/overconfidence"
	"github.com/VigilAI/VigilGate/pkg/detectors/profile"
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

const defaultMaxResponseLength = 100000

const emptyResponseExplanation = "Empty response"

type Analyzer struct {
	logger            *logrus.Logger
	maxResponseLength int
	overconfidence    *overconfidence.Detector
	contradiction     *contradiction.Detector
	grounding         *grounding.Verifier
}

func New(cfg config.AnalyzerConfig, logger *logrus.Logger) (*Analyzer, error) {
	ocDetector, err := overconfidence.NewDetector(overconfidence.Config{
		CertaintyMarkers: cfg.CertaintyMarkers,
		SensitiveTerms:   cfg.SensitiveTerms,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("overconfidence detector: %w", err)
	}

	icDetector, err := contradiction.NewDetector(contradiction.Config{
		YearGap:        cfg.YearGap,
		MagnitudeRatio: cfg.MagnitudeRatio,
		OpenTerms:      cfg.OpenTerms,
		ClosedTerms:    cfg.ClosedTerms,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("contradiction detector: %w", err)
	}

	verifier, err := grounding.NewVerifier(grounding.Config{
		CoverageThreshold: cfg.CoverageThreshold,
		NegationWindow:    cfg.NegationWindow,
		NegationMarkers:   cfg.NegationMarkers,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("grounding verifier: %w", err)
	}

	maxLength := cfg.MaxResponseLength
	if maxLength <= 0 {
		maxLength = defaultMaxResponseLength
	}

	return &Analyzer{
		logger:            logger,
		maxResponseLength: maxLength,
		overconfidence:    ocDetector,
		contradiction:     icDetector,
		grounding:         verifier,
	}, nil
}

// Analyze runs the full pipeline over one request. It never fails: any
// internal fault is converted into the zero-risk result with an explanation
// naming the fault class. Responses beyond the length ceiling are truncated
// before extraction so runtime stays proportional to the ceiling.
func (a *Analyzer) Analyze(req analysis.Request) (result analysis.Assessment) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.WithField("fault", fmt.Sprintf("%v", r)).Error("analysis fault recovered")
			result = faultResult(r)
		}
	}()

	if strings.TrimSpace(req.LLMResponse) == "" {
		return emptyResult()
	}

	response := req.LLMResponse
	if len(response) > a.maxResponseLength {
		response = response[:a.maxResponseLength]
	}

	claims := ExtractClaims(response)
	verified := a.grounding.Verify(claims, req.RAGResults)

	anyContradicted := false
	anyUnverified := false
	confidences := make([]float64, 0, len(verified))
	for i, c := range verified {
		switch c.RAGStatus {
		case analysis.StatusContradicted:
			anyContradicted = true
		case analysis.StatusUnverified:
			anyUnverified = true
		}
		verified[i].Confidence = ClaimConfidence(c.Text, c.RAGStatus)
		confidences = append(confidences, verified[i].Confidence)
	}
	LinkDependencies(verified)
	conflicts := a.contradiction.DetectPairs(claims)

	ocSignal := a.overconfidence.Detect(req.Prompt, response)
	icSignal := a.contradiction.Detect(response)

	signals := analysis.SignalSet{
		InternalContradiction: icSignal.Flagged,
		ContradictionDetails:  icSignal.Reason,
		// Contradiction takes precedence over unverified for scoring.
		RAGContradiction:     anyContradicted,
		RAGUnverified:        anyUnverified && !anyContradicted,
		Overconfidence:       ocSignal.Flagged,
		OverconfidenceReason: ocSignal.Reason,
	}

	score := Score(signals)
	domain := profile.ClassifyDomain(req.Prompt, response)
	timeSensitivity := profile.TimeSensitivity(req.Prompt, response)

	return analysis.Assessment{
		RiskScore:       score,
		RiskLevel:       analysis.LevelForScore(score),
		Explanation:     Explain(signals, score),
		Signals:         signals,
		Claims:          verified,
		ClaimConflicts:  conflicts,
		TrustScore:      TrustScore(score, signals, domain, timeSensitivity, confidences),
		Domain:          domain,
		TimeSensitivity: timeSensitivity,
	}
}

func emptyResult() analysis.Assessment {
	return analysis.Assessment{
		RiskScore:       0,
		RiskLevel:       analysis.RiskLow,
		Explanation:     emptyResponseExplanation,
		Signals:         analysis.SignalSet{},
		Claims:          []analysis.Claim{},
		TrustScore:      0.5,
		Domain:          profile.DomainGeneral,
		TimeSensitivity: profile.TimeSensitivityLow,
	}
}

func faultResult(fault interface{}) analysis.Assessment {
	result := emptyResult()
	result.Explanation = fmt.Sprintf("Internal analysis fault (%T)", fault)
	return result
}
