package analyzer

import (
	"strings"

	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

const noSignalsBody = "No significant risk signals detected"

// Explain renders the assessment rationale: a risk-level prefix followed by
// one fixed-template string per active signal, in strict priority order
// (internal contradiction, RAG contradiction, unverified claims,
// overconfidence), joined by "; ".
func Explain(signals analysis.SignalSet, score int) string {
	var issues []string

	if signals.InternalContradiction {
		if signals.ContradictionDetails != "" {
			issues = append(issues, "Internal contradiction detected: "+signals.ContradictionDetails)
		} else {
			issues = append(issues, "Response contains internal contradictions")
		}
	}
	if signals.RAGContradiction {
		issues = append(issues, "Response contradicts retrieved knowledge base information")
	}
	if signals.RAGUnverified {
		issues = append(issues, "Response contains unverified factual claims")
	}
	if signals.Overconfidence {
		if signals.OverconfidenceReason != "" {
			issues = append(issues, "Overconfidence detected: "+signals.OverconfidenceReason)
		} else {
			issues = append(issues, "High confidence language without supporting evidence")
		}
	}

	prefix := string(analysis.LevelForScore(score)) + " RISK: "
	if len(issues) == 0 {
		return prefix + noSignalsBody
	}
	return prefix + strings.Join(issues, "; ")
}
