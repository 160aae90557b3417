package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/domain/record"
)

type getRecordHandler struct {
	logger *logrus.Logger
	repo   record.Repository
}

func NewGetRecordHandler(logger *logrus.Logger, repo record.Repository) Handler {
	return &getRecordHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getRecordHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("record_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record ID"})
	}

	rec, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if record.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
		}
		h.logger.WithError(err).Error("failed to load analysis record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load record"})
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}
