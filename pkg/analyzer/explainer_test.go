package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

func TestExplainNoSignals(t *testing.T) {
	got := Explain(analysis.SignalSet{}, 0)
	assert.Equal(t, "LOW RISK: No significant risk signals detected", got)
}

func TestExplainPrefixFollowsScoreBand(t *testing.T) {
	signals := analysis.SignalSet{RAGUnverified: true}
	assert.Equal(t, "LOW RISK: Response contains unverified factual claims", Explain(signals, 15))
	assert.Equal(t, "MEDIUM RISK: Response contains unverified factual claims", Explain(signals, 35))
	assert.Equal(t, "HIGH RISK: Response contains unverified factual claims", Explain(signals, 75))
}

func TestExplainPriorityOrder(t *testing.T) {
	got := Explain(analysis.SignalSet{
		InternalContradiction: true,
		RAGContradiction:      true,
		Overconfidence:        true,
	}, 95)
	assert.Equal(t,
		"HIGH RISK: Response contains internal contradictions; "+
			"Response contradicts retrieved knowledge base information; "+
			"High confidence language without supporting evidence",
		got)
}

func TestExplainIncludesDetectorDetails(t *testing.T) {
	got := Explain(analysis.SignalSet{
		InternalContradiction: true,
		ContradictionDetails:  "Conflicting numerical values",
		Overconfidence:        true,
		OverconfidenceReason:  "High confidence language detected",
	}, 60)
	assert.Equal(t,
		"MEDIUM RISK: Internal contradiction detected: Conflicting numerical values; "+
			"Overconfidence detected: High confidence language detected",
		got)
}
