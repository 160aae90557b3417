package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VigilAI/VigilGate/pkg/detectors/profile"
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

func TestTrustScoreCleanGeneralResponse(t *testing.T) {
	got := TrustScore(0, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, nil)
	assert.InDelta(t, 1.0, got, 0.001)
}

func TestTrustScoreDomainMultiplierLowersTrust(t *testing.T) {
	general := TrustScore(20, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, nil)
	health := TrustScore(20, analysis.SignalSet{}, profile.DomainHealth, profile.TimeSensitivityLow, nil)
	legal := TrustScore(20, analysis.SignalSet{}, profile.DomainLegal, profile.TimeSensitivityLow, nil)
	assert.Greater(t, general, health)
	assert.Greater(t, health, legal)
	assert.InDelta(t, 0.8/1.5, health, 0.001)
}

func TestTrustScoreTimeSensitivityPenalty(t *testing.T) {
	low := TrustScore(0, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, nil)
	medium := TrustScore(0, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityMedium, nil)
	high := TrustScore(0, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityHigh, nil)
	assert.InDelta(t, low-0.10, medium, 0.001)
	assert.InDelta(t, low-0.20, high, 0.001)
}

func TestTrustScoreSignalPenalties(t *testing.T) {
	base := TrustScore(15, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, nil)
	flagged := TrustScore(15, analysis.SignalSet{RAGUnverified: true}, profile.DomainGeneral, profile.TimeSensitivityLow, nil)
	assert.InDelta(t, base-0.05, flagged, 0.001)
}

func TestTrustScoreClampedToZero(t *testing.T) {
	got := TrustScore(100, analysis.SignalSet{
		InternalContradiction: true,
		RAGContradiction:      true,
		Overconfidence:        true,
	}, profile.DomainLegal, profile.TimeSensitivityHigh, nil)
	assert.Equal(t, 0.0, got)
}

func TestTrustScoreBlendsAverageClaimConfidence(t *testing.T) {
	base := TrustScore(0, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, nil)
	// base 1.0 blended with avg confidence 0.5: 1.0*0.6 + 0.5*0.4
	blended := TrustScore(0, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, []float64{0.4, 0.6})
	assert.InDelta(t, 1.0, base, 0.001)
	assert.InDelta(t, 0.8, blended, 0.001)
}

func TestTrustScoreHighConfidenceRaisesBlend(t *testing.T) {
	low := TrustScore(40, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, []float64{0.2})
	high := TrustScore(40, analysis.SignalSet{}, profile.DomainGeneral, profile.TimeSensitivityLow, []float64{0.9})
	assert.Greater(t, high, low)
	assert.InDelta(t, 0.6*0.6+0.2*0.4, low, 0.001)
}
