package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VigilAI/VigilGate/pkg/domain/record"
	"github.com/VigilAI/VigilGate/pkg/infra/repository"
)

func newRecordsApp(t *testing.T) (*fiber.App, record.Repository) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	repo := repository.NewMemoryRepository()

	app := fiber.New()
	app.Get("/api/v1/records", NewListRecordsHandler(logger, repo).Handle)
	app.Get("/api/v1/records/:record_id", NewGetRecordHandler(logger, repo).Handle)
	return app, repo
}

func TestGetRecordHandlerFound(t *testing.T) {
	app, repo := newRecordsApp(t)
	rec := &record.AnalysisRecord{Prompt: "what happened", Action: "WARN", RiskScore: 55}
	require.NoError(t, repo.Save(context.Background(), rec))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/records/"+rec.ID.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got record.AnalysisRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 55, got.RiskScore)
}

func TestGetRecordHandlerNotFound(t *testing.T) {
	app, _ := newRecordsApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/records/"+uuid.New().String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetRecordHandlerInvalidID(t *testing.T) {
	app, _ := newRecordsApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/records/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListRecordsHandler(t *testing.T) {
	app, repo := newRecordsApp(t)
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Save(context.Background(), &record.AnalysisRecord{Prompt: "p", Action: "ALLOW"}))
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/records", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Count   int                     `json:"count"`
		Records []record.AnalysisRecord `json:"records"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Records, 2)
}
