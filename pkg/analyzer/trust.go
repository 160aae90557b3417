package analyzer

import (
	"github.com/VigilAI/VigilGate/pkg/detectors/profile"
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

// Domain multipliers divide the base trust: misinformation in these domains
// carries more downside than the raw score reflects.
var domainMultipliers = map[string]float64{
	profile.DomainGeneral: 1.0,
	profile.DomainHealth:  1.5,
	profile.DomainFinance: 1.4,
	profile.DomainLegal:   1.6,
}

var timeSensitivityPenalty = map[string]float64{
	profile.TimeSensitivityLow:    0.0,
	profile.TimeSensitivityMedium: 0.10,
	profile.TimeSensitivityHigh:   0.20,
}

// Weights blending the threshold-derived trust with average claim
// confidence; the confidence share widens the spread between responses
// whose signals otherwise tie.
const (
	trustBlendWeight      = 0.6
	confidenceBlendWeight = 0.4
)

// TrustScore estimates, on a 0-1 scale, how safe the response is to expose
// publicly. Purely advisory: it is reported alongside the risk score and
// never feeds the scoring or enforcement path.
func TrustScore(riskScore int, signals analysis.SignalSet, domain, timeSensitivity string, claimConfidences []float64) float64 {
	trust := 1.0 - float64(riskScore)/100.0

	if mult, ok := domainMultipliers[domain]; ok && mult > 0 {
		trust /= mult
	}
	trust -= timeSensitivityPenalty[timeSensitivity]

	if len(claimConfidences) > 0 {
		sum := 0.0
		for _, c := range claimConfidences {
			sum += c
		}
		avg := sum / float64(len(claimConfidences))
		trust = trust*trustBlendWeight + avg*confidenceBlendWeight
	}

	if signals.RAGUnverified {
		trust -= 0.05
	}
	if signals.RAGContradiction {
		trust -= 0.15
	}
	if signals.InternalContradiction {
		trust -= 0.20
	}
	if signals.Overconfidence {
		trust -= 0.10
	}

	if trust < 0 {
		return 0
	}
	if trust > 1 {
		return 1
	}
	return trust
}

// DomainMultiplier exposes the multiplier table for reporting.
func DomainMultiplier(domain string) float64 {
	if mult, ok := domainMultipliers[domain]; ok {
		return mult
	}
	return 1.0
}
