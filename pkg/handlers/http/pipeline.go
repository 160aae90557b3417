package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/analyzer"
	"github.com/VigilAI/VigilGate/pkg/detectors/profile"
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
	"github.com/VigilAI/VigilGate/pkg/domain/record"
	"github.com/VigilAI/VigilGate/pkg/infra/auditlogs"
	"github.com/VigilAI/VigilGate/pkg/infra/metrics"
	"github.com/VigilAI/VigilGate/pkg/policy"
	"github.com/VigilAI/VigilGate/pkg/proxy"
)

// pipeline runs one prompt through the full gateway path: upstream
// completion, risk analysis, enforcement, persistence and audit. Both the
// chat and analyze endpoints share it; they differ only in what they
// reveal of the outcome.
type pipeline struct {
	logger    *logrus.Logger
	forwarder proxy.Forwarder
	analyzer  *analyzer.Analyzer
	engine    *policy.Engine
	repo      record.Repository
	audit     auditlogs.Service
}

type pipelineOutcome struct {
	Record     *record.AnalysisRecord
	Assessment analysis.Assessment
	Decision   policy.Decision
	Upstream   *proxy.Result
}

func (p *pipeline) run(ctx context.Context, prompt, domain string, docs []analysis.Document) (*pipelineOutcome, error) {
	if domain == "" {
		domain = profile.ClassifyDomain(prompt, "")
	}

	upstream, err := p.forwarder.Complete(ctx, prompt, domain)
	if err != nil {
		p.audit.Emit(auditlogs.Event{
			Type:   auditlogs.EventTypeUpstreamExhausted,
			Domain: domain,
			Detail: err.Error(),
		})
		return nil, err
	}
	if upstream.FromFallback {
		p.audit.Emit(auditlogs.Event{
			Type:   auditlogs.EventTypeUpstreamFallback,
			Domain: domain,
		})
	}

	assessment := p.analyzer.Analyze(analysis.Request{
		Prompt:      prompt,
		LLMResponse: upstream.Response,
		RAGResults:  docs,
	})
	decision := p.engine.Decide(assessment, prompt, upstream.Response, domain)

	metrics.DecisionsTotal.WithLabelValues(string(decision.Action), domain).Inc()
	metrics.RiskScore.Observe(float64(assessment.RiskScore))

	// Assigned here, not by the store, so the audit event and the caller's
	// record id stay valid even when persistence fails.
	rec := &record.AnalysisRecord{
		ID:                 uuid.New(),
		Prompt:             prompt,
		RawAnswer:          upstream.Response,
		VisibleAnswer:      decision.VisibleOutput,
		Domain:             domain,
		RiskScore:          assessment.RiskScore,
		RAGStatus:          ragStatusSummary(assessment),
		ContradictionCheck: assessment.Signals.ContradictionDetails,
		Action:             string(decision.Action),
		Explanation:        assessment.Explanation,
		TrustScore:         assessment.TrustScore,
		WarningText:        decision.WarningText,
	}
	if err := p.repo.Save(ctx, rec); err != nil {
		// The caller still gets their answer when persistence is down.
		p.logger.WithError(err).Error("failed to persist analysis record")
	}

	p.audit.Emit(auditlogs.Event{
		Type:      auditEventForAction(decision.Action),
		RecordID:  rec.ID.String(),
		Domain:    domain,
		Action:    string(decision.Action),
		RiskScore: assessment.RiskScore,
		RiskLevel: string(assessment.RiskLevel),
		Outcome:   auditOutcomeForAction(decision.Action),
		Detail:    decision.Reason,
	})

	return &pipelineOutcome{
		Record:     rec,
		Assessment: assessment,
		Decision:   decision,
		Upstream:   upstream,
	}, nil
}

func ragStatusSummary(a analysis.Assessment) string {
	switch {
	case a.Signals.RAGContradiction:
		return string(analysis.StatusContradicted)
	case a.Signals.RAGUnverified:
		return string(analysis.StatusUnverified)
	case len(a.Claims) > 0:
		return string(analysis.StatusSupported)
	default:
		return string(analysis.StatusUnverified)
	}
}

func auditEventForAction(action policy.Action) string {
	switch action {
	case policy.ActionBlock:
		return auditlogs.EventTypeDecisionBlocked
	case policy.ActionWarn:
		return auditlogs.EventTypeDecisionWarned
	default:
		return auditlogs.EventTypeDecisionAllowed
	}
}

func auditOutcomeForAction(action policy.Action) string {
	if action == policy.ActionBlock {
		return auditlogs.OutcomeSuppressed
	}
	return auditlogs.OutcomeDelivered
}
