package proxy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VigilAI/VigilGate/pkg/config"
	"github.com/VigilAI/VigilGate/pkg/infra/providers"
)

type stubClient struct {
	calls     int
	failUntil int
	err       error
	response  string
}

func (s *stubClient) Ask(_ context.Context, _ *providers.Config, _ string) (*providers.CompletionResponse, error) {
	s.calls++
	if s.calls <= s.failUntil {
		return nil, s.err
	}
	return &providers.CompletionResponse{Response: s.response, Model: "stub"}, nil
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestCompleteSucceedsFirstAttempt(t *testing.T) {
	client := &stubClient{response: "fine"}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 2, FallbackToMock: true}, newTestLogger())

	result, err := f.Complete(context.Background(), "hello", "general")
	require.NoError(t, err)
	assert.Equal(t, "fine", result.Response)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, OutcomeSuccess, result.FinalOutcome)
	assert.False(t, result.FromFallback)
}

func TestCompleteRetriesThenSucceeds(t *testing.T) {
	client := &stubClient{
		failUntil: 1,
		err:       providers.NewUpstreamError(providers.FaultServer, "openai", errors.New("503")),
		response:  "recovered",
	}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 2, FallbackToMock: true}, newTestLogger())

	result, err := f.Complete(context.Background(), "hello", "general")
	require.NoError(t, err)
	assert.Equal(t, "recovered", result.Response)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, OutcomeSuccess, result.FinalOutcome)
}

func TestCompleteExhaustedFallsBackToMock(t *testing.T) {
	client := &stubClient{
		failUntil: 10,
		err:       providers.NewUpstreamError(providers.FaultServer, "openai", errors.New("503")),
	}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 0, FallbackToMock: true}, newTestLogger())

	result, err := f.Complete(context.Background(), "what is the capital of France", "general")
	require.NoError(t, err)
	assert.True(t, result.FromFallback)
	assert.Equal(t, OutcomeFallback, result.FinalOutcome)
	assert.Equal(t, 1, result.Attempts)
	assert.NotEmpty(t, result.Response)
}

func TestCompleteExhaustedWithoutFallbackFails(t *testing.T) {
	client := &stubClient{
		failUntil: 10,
		err:       providers.NewUpstreamError(providers.FaultServer, "openai", errors.New("503")),
	}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 0, FallbackToMock: false}, newTestLogger())

	result, err := f.Complete(context.Background(), "hello", "general")
	require.Error(t, err)
	assert.Nil(t, result)

	var upstream *providers.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, providers.FaultServer, upstream.Kind)
}

func TestCompleteAuthErrorSkipsRetries(t *testing.T) {
	client := &stubClient{
		failUntil: 10,
		err:       providers.NewUpstreamError(providers.FaultAuth, "openai", errors.New("401")),
	}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 3, FallbackToMock: true}, newTestLogger())

	result, err := f.Complete(context.Background(), "hello", "general")
	require.NoError(t, err)
	assert.True(t, result.FromFallback)
	assert.Equal(t, 1, client.calls)
}

func TestCompleteRateLimitSkipsRetries(t *testing.T) {
	client := &stubClient{
		failUntil: 10,
		err:       providers.NewUpstreamError(providers.FaultRateLimit, "openai", errors.New("429")),
	}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 3, FallbackToMock: false}, newTestLogger())

	_, err := f.Complete(context.Background(), "hello", "general")
	require.Error(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestCompleteCancelledContextAbortsBackoff(t *testing.T) {
	client := &stubClient{
		failUntil: 10,
		err:       providers.NewUpstreamError(providers.FaultNetwork, "openai", errors.New("refused")),
	}
	f := New(client, config.ProviderConfig{Name: "openai", MaxRetries: 3, FallbackToMock: true}, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	result, err := f.Complete(ctx, "hello", "general")
	require.NoError(t, err)
	assert.True(t, result.FromFallback)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, 1, client.calls)
}
