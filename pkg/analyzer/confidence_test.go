package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

func TestClaimConfidenceSupportedClaim(t *testing.T) {
	got := ClaimConfidence("Paris is the capital of France", analysis.StatusSupported)
	assert.InDelta(t, 0.85, got, 0.001)
}

func TestClaimConfidenceContradictedClaim(t *testing.T) {
	got := ClaimConfidence("The museum was built before the war", analysis.StatusContradicted)
	assert.InDelta(t, 0.10, got, 0.001)
}

func TestClaimConfidenceUnverifiedClaim(t *testing.T) {
	got := ClaimConfidence("Norway has long winters with heavy snowfall", analysis.StatusUnverified)
	assert.InDelta(t, 0.40, got, 0.001)
}

func TestClaimConfidenceHedgingLowersScore(t *testing.T) {
	plain := ClaimConfidence("The bridge carries rail traffic every day", analysis.StatusSupported)
	hedged := ClaimConfidence("The bridge may possibly carry rail traffic", analysis.StatusSupported)
	assert.InDelta(t, plain-0.10, hedged, 0.001)
}

func TestClaimConfidenceHedgingPenaltyCapped(t *testing.T) {
	heavy := ClaimConfidence("It may might could possibly perhaps still work out fine", analysis.StatusSupported)
	assert.InDelta(t, 0.85-0.15, heavy, 0.001)
}

func TestClaimConfidenceSpecificsRewardSupported(t *testing.T) {
	got := ClaimConfidence("The tower was completed in 1889 for the fair", analysis.StatusSupported)
	assert.InDelta(t, 0.95, got, 0.001)
}

func TestClaimConfidenceSpecificsPenalizeUnverified(t *testing.T) {
	got := ClaimConfidence("Revenue grew by 40% over the last quarter", analysis.StatusUnverified)
	assert.InDelta(t, 0.35, got, 0.001)
}

func TestClaimConfidenceShortClaimPenalty(t *testing.T) {
	got := ClaimConfidence("Paris is big", analysis.StatusSupported)
	assert.InDelta(t, 0.80, got, 0.001)
}

func TestClaimConfidenceClampedToZero(t *testing.T) {
	got := ClaimConfidence("may possibly fail", analysis.StatusContradicted)
	assert.Equal(t, 0.0, got)
}

func TestLinkDependenciesSharedEntities(t *testing.T) {
	claims := []analysis.Claim{
		{Text: "Paris is the capital of France"},
		{Text: "The Eiffel Tower stands in Paris"},
		{Text: "Bananas are yellow fruits"},
	}
	LinkDependencies(claims)

	require.Len(t, claims, 3)
	assert.Equal(t, []int{1}, claims[0].DependsOn)
	assert.Equal(t, []int{0}, claims[1].DependsOn)
	assert.Empty(t, claims[2].DependsOn)
}
