package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryableByFaultKind(t *testing.T) {
	cases := []struct {
		kind FaultKind
		want bool
	}{
		{FaultNetwork, true},
		{FaultTimeout, true},
		{FaultServer, true},
		{FaultMalformed, true},
		{FaultAuth, false},
		{FaultRateLimit, false},
	}
	for _, tc := range cases {
		err := NewUpstreamError(tc.kind, "openai", errors.New("boom"))
		assert.Equal(t, tc.want, err.Retryable(), string(tc.kind))
	}
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status int
		want   FaultKind
	}{
		{401, FaultAuth},
		{403, FaultAuth},
		{429, FaultRateLimit},
		{408, FaultTimeout},
		{504, FaultTimeout},
		{500, FaultServer},
		{503, FaultServer},
		{418, FaultNetwork},
	}
	for _, tc := range cases {
		err := ClassifyStatus("openai", tc.status, errors.New("boom"))
		assert.Equal(t, tc.want, err.Kind, "status %d", tc.status)
	}
}

func TestClassifyDeadlineExceeded(t *testing.T) {
	err := Classify("anthropic", fmt.Errorf("request: %w", context.DeadlineExceeded))
	assert.Equal(t, FaultTimeout, err.Kind)
}

func TestClassifyPassesThroughClassifiedErrors(t *testing.T) {
	original := NewUpstreamError(FaultRateLimit, "openai", errors.New("429"))
	wrapped := fmt.Errorf("attempt 2: %w", original)

	got := Classify("openai", wrapped)
	assert.Equal(t, FaultRateLimit, got.Kind)
	assert.Equal(t, "openai", got.Provider)
}

func TestClassifyUnknownErrorIsNetwork(t *testing.T) {
	got := Classify("openai", errors.New("connection refused"))
	assert.Equal(t, FaultNetwork, got.Kind)
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewUpstreamError(FaultServer, "openai", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "SERVER_ERROR")
	assert.Contains(t, err.Error(), "openai")
}
