package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDomainHealth(t *testing.T) {
	got := ClassifyDomain("What is the right dose of this medicine?", "Ask your doctor before changing any treatment.")
	assert.Equal(t, DomainHealth, got)
}

func TestClassifyDomainFinance(t *testing.T) {
	got := ClassifyDomain("Should I put money into this stock?", "Diversify your portfolio before trading.")
	assert.Equal(t, DomainFinance, got)
}

func TestClassifyDomainLegal(t *testing.T) {
	got := ClassifyDomain("Can my landlord break the contract?", "Consult a lawyer about your rights under the law.")
	assert.Equal(t, DomainLegal, got)
}

func TestClassifyDomainGeneralOnNoMatches(t *testing.T) {
	got := ClassifyDomain("What is the tallest mountain?", "Mount Everest is the tallest mountain above sea level.")
	assert.Equal(t, DomainGeneral, got)
}

func TestClassifyDomainMostMatchesWins(t *testing.T) {
	// one legal term against three health terms
	got := ClassifyDomain(
		"Is this treatment legal?",
		"The medicine is prescribed by a doctor for the symptom.",
	)
	assert.Equal(t, DomainHealth, got)
}

func TestTimeSensitivityHigh(t *testing.T) {
	assert.Equal(t, TimeSensitivityHigh, TimeSensitivity("What is the price right now?", ""))
	assert.Equal(t, TimeSensitivityHigh, TimeSensitivity("", "The company currently employs about forty people."))
}

func TestTimeSensitivityMedium(t *testing.T) {
	assert.Equal(t, TimeSensitivityMedium, TimeSensitivity("", "Modern architecture favors glass facades."))
}

func TestTimeSensitivityLow(t *testing.T) {
	assert.Equal(t, TimeSensitivityLow, TimeSensitivity("", "Historically, the region traded in salt and wool."))
}

func TestTimeSensitivityDefaultsToMedium(t *testing.T) {
	assert.Equal(t, TimeSensitivityMedium, TimeSensitivity("Tell me about gravity.", "Objects attract each other in proportion to their mass."))
}
