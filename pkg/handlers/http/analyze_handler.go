package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/analyzer"
	"github.com/VigilAI/VigilGate/pkg/domain/analysis"
	"github.com/VigilAI/VigilGate/pkg/domain/record"
	"github.com/VigilAI/VigilGate/pkg/infra/auditlogs"
	"github.com/VigilAI/VigilGate/pkg/policy"
	"github.com/VigilAI/VigilGate/pkg/proxy"
)

type analyzeRequest struct {
	Prompt     string              `json:"prompt"`
	Domain     string              `json:"domain,omitempty"`
	RAGResults []analysis.Document `json:"rag_results,omitempty"`
}

type analyzeHandler struct {
	logger   *logrus.Logger
	pipeline *pipeline
}

func NewAnalyzeHandler(
	logger *logrus.Logger,
	forwarder proxy.Forwarder,
	riskAnalyzer *analyzer.Analyzer,
	engine *policy.Engine,
	repo record.Repository,
	audit auditlogs.Service,
) Handler {
	return &analyzeHandler{
		logger: logger,
		pipeline: &pipeline{
			logger:    logger,
			forwarder: forwarder,
			analyzer:  riskAnalyzer,
			engine:    engine,
			repo:      repo,
			audit:     audit,
		},
	}
}

// Handle runs the full pipeline and returns the complete diagnostic
// picture: the enforced output next to the raw answer, claim verdicts and
// every signal that fired.
func (h *analyzeHandler) Handle(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prompt is required"})
	}

	outcome, err := h.pipeline.run(c.Context(), req.Prompt, req.Domain, req.RAGResults)
	if err != nil {
		h.logger.WithError(err).Error("analyze pipeline failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream provider unavailable"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"record_id":        outcome.Record.ID.String(),
		"final_action":     string(outcome.Decision.Action),
		"response":         outcome.Decision.VisibleOutput,
		"raw_response":     outcome.Upstream.Response,
		"risk_score":       outcome.Assessment.RiskScore,
		"risk_level":       string(outcome.Assessment.RiskLevel),
		"explanation":      outcome.Assessment.Explanation,
		"signals":          outcome.Assessment.Signals,
		"claims":           outcome.Assessment.Claims,
		"claim_conflicts":  outcome.Assessment.ClaimConflicts,
		"trust_score":      outcome.Assessment.TrustScore,
		"domain":           outcome.Record.Domain,
		"time_sensitivity": outcome.Assessment.TimeSensitivity,
		"violations":       outcome.Decision.Violations,
		"upstream": fiber.Map{
			"attempts":      outcome.Upstream.Attempts,
			"from_fallback": outcome.Upstream.FromFallback,
			"model":         outcome.Upstream.Model,
		},
	})
}
