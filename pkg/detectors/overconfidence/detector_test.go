package overconfidence

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	d, err := NewDetector(Config{}, logger)
	require.NoError(t, err)
	return d
}

func TestDetectCertaintyLanguage(t *testing.T) {
	d := newTestDetector(t)
	cases := []string{
		"This will definitely work for you.",
		"Success is guaranteed with this approach.",
		"It is ABSOLUTELY the best option available.",
		"That outcome is impossible to avoid.",
		"This strategy always wins in the long run.",
	}
	for _, response := range cases {
		signal := d.Detect("", response)
		assert.True(t, signal.Flagged, response)
		assert.Equal(t, "High confidence language detected", signal.Reason)
	}
}

func TestDetectHedgedLanguageNotFlagged(t *testing.T) {
	d := newTestDetector(t)
	signal := d.Detect("", "This might work, though results vary between people and situations.")
	assert.False(t, signal.Flagged)
	assert.Empty(t, signal.Reason)
}

func TestDetectSensitiveDomainWithQuantifiableClaim(t *testing.T) {
	d := newTestDetector(t)
	signal := d.Detect(
		"Is this medical treatment effective for everyone?",
		"The treatment works in 95% of cases according to our records.",
	)
	assert.True(t, signal.Flagged)
	assert.Equal(t, "Confident advice in sensitive domain", signal.Reason)
}

func TestDetectSensitiveDomainWithoutQuantifiableClaim(t *testing.T) {
	d := newTestDetector(t)
	signal := d.Detect(
		"Is this medical treatment effective?",
		"The treatment tends to help most patients over time.",
	)
	assert.False(t, signal.Flagged)
}

func TestDetectQuantifiableWithoutSensitiveDomain(t *testing.T) {
	d := newTestDetector(t)
	signal := d.Detect(
		"When was the bridge finished being built?",
		"The bridge was completed in 1937 after four years of construction work.",
	)
	assert.False(t, signal.Flagged)
}

func TestDetectPromptContributesToSensitiveDomainOnly(t *testing.T) {
	d := newTestDetector(t)
	// certainty marker in the prompt alone must not flag
	signal := d.Detect("Will this definitely work?", "Results depend on many different factors here.")
	assert.False(t, signal.Flagged)
}

func TestDetectCurrencyAmountCountsAsQuantifiable(t *testing.T) {
	d := newTestDetector(t)
	signal := d.Detect(
		"How should I handle my money and savings this quarter?",
		"Put $500 into the fund each month and the balance grows.",
	)
	assert.True(t, signal.Flagged)
	assert.Equal(t, "Confident advice in sensitive domain", signal.Reason)
}

func TestDetectCustomLexicon(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	d, err := NewDetector(Config{CertaintyMarkers: []string{`\bunquestionably\b`}}, logger)
	require.NoError(t, err)

	assert.True(t, d.Detect("", "This is unquestionably correct.").Flagged)
	assert.False(t, d.Detect("", "This is definitely correct.").Flagged)
}

func TestNewDetectorRejectsInvalidPattern(t *testing.T) {
	logger := logrus.New()
	_, err := NewDetector(Config{CertaintyMarkers: []string{`[`}}, logger)
	assert.Error(t, err)
}

func TestDetectLogsFlaggedDetection(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d, err := NewDetector(Config{}, logger)
	require.NoError(t, err)

	signal := d.Detect("", "This will definitely work for you.")
	require.True(t, signal.Flagged)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "certainty language detected", hook.LastEntry().Message)
}
