package analyzer

import (
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

// Signal weights. Additive and independent; the raw sum may exceed 100, the
// final score is capped there.
const (
	weightInternalContradiction = 40
	weightRAGContradiction      = 35
	weightRAGUnverified         = 15
	weightOverconfidence        = 20

	maxRiskScore = 100
)

// Score aggregates the active signal flags into a risk score between 0 and
// 100. Higher means riskier, not less correct.
func Score(signals analysis.SignalSet) int {
	score := 0
	if signals.InternalContradiction {
		score += weightInternalContradiction
	}
	if signals.RAGContradiction {
		score += weightRAGContradiction
	}
	if signals.RAGUnverified {
		score += weightRAGUnverified
	}
	if signals.Overconfidence {
		score += weightOverconfidence
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}
	return score
}

// Breakdown maps each active signal to its weight contribution. Useful for
// transparency; not part of the scoring contract.
func Breakdown(signals analysis.SignalSet) map[string]int {
	components := make(map[string]int)
	if signals.InternalContradiction {
		components["internal_contradiction"] = weightInternalContradiction
	}
	if signals.RAGContradiction {
		components["rag_contradiction"] = weightRAGContradiction
	}
	if signals.RAGUnverified {
		components["rag_unverified"] = weightRAGUnverified
	}
	if signals.Overconfidence {
		components["overconfidence"] = weightOverconfidence
	}
	return components
}
