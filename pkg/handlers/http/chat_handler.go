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

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type chatRequest struct {
	Prompt     string              `json:"prompt"`
	Role       string              `json:"role,omitempty"`
	Domain     string              `json:"domain,omitempty"`
	RAGResults []analysis.Document `json:"rag_results,omitempty"`
}

type chatHandler struct {
	logger   *logrus.Logger
	pipeline *pipeline
}

func NewChatHandler(
	logger *logrus.Logger,
	forwarder proxy.Forwarder,
	riskAnalyzer *analyzer.Analyzer,
	engine *policy.Engine,
	repo record.Repository,
	audit auditlogs.Service,
) Handler {
	return &chatHandler{
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

// Handle answers a chat prompt through the safety pipeline. Unprivileged
// callers only ever see the enforced output; the admin role additionally
// receives the raw answer and the full risk diagnostics.
func (h *chatHandler) Handle(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prompt is required"})
	}
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown role"})
	}

	outcome, err := h.pipeline.run(c.Context(), req.Prompt, req.Domain, req.RAGResults)
	if err != nil {
		h.logger.WithError(err).Error("chat pipeline failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream provider unavailable"})
	}

	body := fiber.Map{
		"record_id": outcome.Record.ID.String(),
		"response":  outcome.Decision.VisibleOutput,
		"action":    string(outcome.Decision.Action),
	}
	if outcome.Decision.WarningText != "" {
		body["warning"] = outcome.Decision.WarningText
	}
	if role == RoleAdmin {
		body["raw_response"] = outcome.Upstream.Response
		body["risk_score"] = outcome.Assessment.RiskScore
		body["risk_level"] = string(outcome.Assessment.RiskLevel)
		body["explanation"] = outcome.Assessment.Explanation
		body["signals"] = outcome.Assessment.Signals
		body["trust_score"] = outcome.Assessment.TrustScore
		body["domain"] = outcome.Record.Domain
		body["from_fallback"] = outcome.Upstream.FromFallback
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
