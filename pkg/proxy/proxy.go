package proxy

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/config"
	"github.com/VigilAI/VigilGate/pkg/infra/httpx"
	"github.com/VigilAI/VigilGate/pkg/infra/metrics"
	"github.com/VigilAI/VigilGate/pkg/infra/providers"
	"github.com/VigilAI/VigilGate/pkg/infra/providers/mock"
)

// Outcome records how a completion was ultimately produced.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFallback Outcome = "fallback"
	OutcomeFatal    Outcome = "fatal"
)

// Result is the outcome of a single Complete call, including how many
// upstream attempts it took and whether the answer came from the
// deterministic fallback generator.
type Result struct {
	Response     string
	Model        string
	Attempts     int
	FinalOutcome Outcome
	FromFallback bool
}

//go:generate mockery --name=Forwarder --dir=. --output=./mocks --filename=forwarder_mock.go --case=underscore --with-expecter

// Forwarder produces a completion for a prompt, hiding retries, the
// circuit breaker and the fallback path from callers.
type Forwarder interface {
	Complete(ctx context.Context, prompt, domain string) (*Result, error)
}

type forwarder struct {
	client  providers.Client
	breaker httpx.CircuitBreaker
	cfg     config.ProviderConfig
	logger  *logrus.Logger
}

// New builds a Forwarder around the given provider client. When
// cfg.UseMock is set the upstream is the deterministic generator and the
// retry machinery never engages.
func New(client providers.Client, cfg config.ProviderConfig, logger *logrus.Logger) Forwarder {
	return &forwarder{
		client:  client,
		breaker: httpx.NewCircuitBreaker(fmt.Sprintf("upstream-%s", cfg.Name), cfg.Timeout, 5),
		cfg:     cfg,
		logger:  logger,
	}
}

type state int

const (
	stateAttempting state = iota
	stateBackoff
	stateDone
)

func (f *forwarder) Complete(ctx context.Context, prompt, domain string) (*Result, error) {
	providerCfg := &providers.Config{
		Credentials:  providers.Credentials{ApiKey: f.cfg.Key},
		Model:        f.cfg.Model,
		SystemPrompt: providers.SystemPromptForDomain(domain),
		Domain:       domain,
	}

	var (
		attempt  int
		lastErr  *providers.UpstreamError
		current  = stateAttempting
		response *providers.CompletionResponse
	)

	for current != stateDone {
		switch current {
		case stateAttempting:
			attempt++
			resp, err := f.ask(ctx, providerCfg, prompt)
			if err == nil {
				response = resp
				current = stateDone
				continue
			}
			lastErr = providers.Classify(f.cfg.Name, err)
			f.logger.WithFields(logrus.Fields{
				"provider": f.cfg.Name,
				"attempt":  attempt,
				"fault":    lastErr.Kind,
			}).Warn("upstream attempt failed")
			if !lastErr.Retryable() || attempt > f.cfg.MaxRetries {
				return f.fallback(prompt, domain, attempt, lastErr)
			}
			current = stateBackoff

		case stateBackoff:
			// 1s, 2s, 4s. A cancelled context skips straight to the
			// fallback decision instead of sleeping through it.
			wait := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-time.After(wait):
				current = stateAttempting
			case <-ctx.Done():
				lastErr = providers.Classify(f.cfg.Name, ctx.Err())
				return f.fallback(prompt, domain, attempt, lastErr)
			}
		}
	}

	metrics.UpstreamAttemptsTotal.WithLabelValues(string(OutcomeSuccess)).Inc()
	return &Result{
		Response:     response.Response,
		Model:        response.Model,
		Attempts:     attempt,
		FinalOutcome: OutcomeSuccess,
	}, nil
}

func (f *forwarder) ask(ctx context.Context, cfg *providers.Config, prompt string) (*providers.CompletionResponse, error) {
	attemptCtx := ctx
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	var resp *providers.CompletionResponse
	err := f.breaker.Execute(func() error {
		var askErr error
		resp, askErr = f.client.Ask(attemptCtx, cfg, prompt)
		return askErr
	})
	if err != nil {
		if httpx.IsOpen(err) {
			return nil, providers.NewUpstreamError(providers.FaultServer, f.cfg.Name, err)
		}
		return nil, err
	}
	return resp, nil
}

func (f *forwarder) fallback(prompt, domain string, attempts int, cause *providers.UpstreamError) (*Result, error) {
	if !f.cfg.FallbackToMock {
		metrics.UpstreamAttemptsTotal.WithLabelValues(string(OutcomeFatal)).Inc()
		return nil, fmt.Errorf("upstream exhausted after %d attempts: %w", attempts, cause)
	}
	f.logger.WithFields(logrus.Fields{
		"provider": f.cfg.Name,
		"attempts": attempts,
		"fault":    cause.Kind,
	}).Info("serving deterministic fallback response")
	metrics.UpstreamAttemptsTotal.WithLabelValues(string(OutcomeFallback)).Inc()
	metrics.UpstreamFallbacksTotal.Inc()
	return &Result{
		Response:     mock.Generate(prompt, domain),
		Model:        "fallback",
		Attempts:     attempts,
		FinalOutcome: OutcomeFallback,
		FromFallback: true,
	}, nil
}
