// Package policy maps a risk assessment onto the ALLOW/WARN/BLOCK
// enforcement decision and builds the caller-visible output.
package policy

import (
	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/config"
	"github.com/VigilAI/VigilGate/pkg/detectors/profile"
	"github.com/VigilAI/VigilGate/pkg/detectors/strict"
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
)

type Action string

const (
	ActionAllow Action = "ALLOW"
	ActionWarn  Action = "WARN"
	ActionBlock Action = "BLOCK"
)

// BlockedMessage is the only text an unprivileged caller ever sees for a
// blocked response. The wording is part of the external contract.
const BlockedMessage = "The output cannot be displayed."

// WarningBanner is attached to WARN responses.
const WarningBanner = "Warning: This response may be unreliable. Please verify before acting."

const (
	defaultWarnThreshold  = 50
	defaultBlockThreshold = 80
)

// Claims scored below this confidence count toward the overconfidence
// auto-block rule.
const lowConfidenceCeiling = 0.4

var sensitiveDomains = map[string]bool{
	profile.DomainHealth:  true,
	profile.DomainFinance: true,
	profile.DomainLegal:   true,
}

// Domains where overconfident unverified advice is blocked outright.
var advisoryDomains = map[string]bool{
	profile.DomainHealth:  true,
	profile.DomainFinance: true,
}

// Decision is the terminal outcome of enforcement. VisibleOutput is what an
// unprivileged caller may see; the full assessment stays privileged.
type Decision struct {
	Action        Action
	VisibleOutput string
	WarningText   string
	Reason        string
	Violations    []strict.Violation
}

type Engine struct {
	logger   *logrus.Logger
	domains  map[string]config.Thresholds
	screener *strict.Screener
}

func NewEngine(cfg config.PolicyConfig, screener *strict.Screener, logger *logrus.Logger) *Engine {
	return &Engine{
		logger:   logger,
		domains:  cfg.Domains,
		screener: screener,
	}
}

// Decide applies the per-domain thresholds to the risk score and shapes the
// visible output. Total over all scores: every integer 0-100 maps to
// exactly one action. A HIGH strict violation or an auto-block rule forces
// BLOCK regardless of the score; the score itself is never modified.
func (e *Engine) Decide(assessment analysis.Assessment, prompt, rawResponse, domain string) Decision {
	violations := e.screener.Screen(prompt, rawResponse)

	action := e.actionForScore(assessment.RiskScore, domain)
	reason := "risk score " + string(assessment.RiskLevel)

	if action != ActionBlock {
		forced := ""
		if strict.HasHigh(violations) {
			forced = "strict violation"
		} else {
			forced = autoBlockReason(assessment, domain)
		}
		if forced != "" {
			e.logger.WithFields(logrus.Fields{
				"domain":     domain,
				"risk_score": assessment.RiskScore,
				"reason":     forced,
			}).Warn("enforcement forced block")
			action = ActionBlock
			reason = forced
		}
	}

	decision := Decision{
		Action:     action,
		Reason:     reason,
		Violations: violations,
	}

	switch action {
	case ActionBlock:
		decision.VisibleOutput = BlockedMessage
	case ActionWarn:
		decision.VisibleOutput = rawResponse
		decision.WarningText = WarningBanner
	default:
		decision.VisibleOutput = rawResponse
	}
	return decision
}

// autoBlockReason applies the conservative signal-combination rules that
// block a response regardless of its numeric score. Returns the reason, or
// empty when no rule fires.
func autoBlockReason(a analysis.Assessment, domain string) string {
	if len(a.ClaimConflicts) > 1 {
		return "multiple claim contradictions"
	}
	if a.Signals.InternalContradiction && sensitiveDomains[domain] {
		return "internal contradiction in sensitive domain"
	}
	if a.Signals.InternalContradiction && a.TimeSensitivity == profile.TimeSensitivityHigh {
		return "internal contradiction in time-sensitive content"
	}
	if a.Signals.Overconfidence && advisoryDomains[domain] {
		lowConfidence := 0
		for _, c := range a.Claims {
			if c.Confidence < lowConfidenceCeiling {
				lowConfidence++
			}
		}
		if a.Signals.RAGUnverified || lowConfidence >= 2 {
			return "overconfident unverified claims in sensitive domain"
		}
	}
	return ""
}

func (e *Engine) actionForScore(score int, domain string) Action {
	warn, block := defaultWarnThreshold, defaultBlockThreshold
	if t, ok := e.domains[domain]; ok {
		if t.Warn > 0 {
			warn = t.Warn
		}
		if t.Block > 0 {
			block = t.Block
		}
	}

	switch {
	case score >= block:
		return ActionBlock
	case score >= warn:
		return ActionWarn
	default:
		return ActionAllow
	}
}
