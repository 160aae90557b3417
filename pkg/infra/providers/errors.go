package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FaultKind classifies an upstream failure for the retry policy.
type FaultKind string

const (
	FaultNetwork   FaultKind = "NETWORK_ERROR"
	FaultTimeout   FaultKind = "TIMEOUT"
	FaultAuth      FaultKind = "AUTH_ERROR"
	FaultRateLimit FaultKind = "RATE_LIMIT"
	FaultServer    FaultKind = "SERVER_ERROR"
	FaultMalformed FaultKind = "MALFORMED"
)

// UpstreamError wraps a provider failure with its fault classification.
type UpstreamError struct {
	Kind     FaultKind
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the retry loop should attempt the call again.
// Auth and rate-limit failures are not retried; another attempt would fail
// the same way.
func (e *UpstreamError) Retryable() bool {
	switch e.Kind {
	case FaultAuth, FaultRateLimit:
		return false
	default:
		return true
	}
}

func NewUpstreamError(kind FaultKind, provider string, err error) *UpstreamError {
	return &UpstreamError{Kind: kind, Provider: provider, Err: err}
}

// ClassifyStatus maps an HTTP status code to a fault kind.
func ClassifyStatus(provider string, status int, err error) *UpstreamError {
	switch {
	case status == 401 || status == 403:
		return NewUpstreamError(FaultAuth, provider, err)
	case status == 429:
		return NewUpstreamError(FaultRateLimit, provider, err)
	case status == 408 || status == 504:
		return NewUpstreamError(FaultTimeout, provider, err)
	case status >= 500:
		return NewUpstreamError(FaultServer, provider, err)
	default:
		return NewUpstreamError(FaultNetwork, provider, err)
	}
}

// Classify converts an arbitrary transport error into an UpstreamError.
// Already-classified errors pass through unchanged.
func Classify(provider string, err error) *UpstreamError {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewUpstreamError(FaultTimeout, provider, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewUpstreamError(FaultTimeout, provider, err)
	}
	return NewUpstreamError(FaultNetwork, provider, err)
}
