package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/domain/record"
)

type listRecordsHandler struct {
	logger *logrus.Logger
	repo   record.Repository
}

func NewListRecordsHandler(logger *logrus.Logger, repo record.Repository) Handler {
	return &listRecordsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listRecordsHandler) Handle(c *fiber.Ctx) error {
	records, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list analysis records")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list records"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":   len(records),
		"records": records,
	})
}
