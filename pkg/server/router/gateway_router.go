package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	handlers "github.com/VigilAI/VigilGate/pkg/handlers/http"
)

var ErrMissingHandler = errors.New("handler transport is incomplete")

type gatewayRouter struct {
	handlerTransport handlers.HandlerTransport
}

func NewGatewayRouter(handlerTransport handlers.HandlerTransport) ServerRouter {
	return &gatewayRouter{
		handlerTransport: handlerTransport,
	}
}

func (r *gatewayRouter) BuildRoutes(router *fiber.App) error {
	t := r.handlerTransport
	if t.ChatHandler == nil || t.AnalyzeHandler == nil ||
		t.ListRecordsHandler == nil || t.GetRecordHandler == nil ||
		t.GetVersionHandler == nil {
		return ErrMissingHandler
	}

	router.Get("/version", t.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Post("/chat", t.ChatHandler.Handle)
		v1.Post("/analyze", t.AnalyzeHandler.Handle)

		records := v1.Group("/records")
		{
			records.Get("", t.ListRecordsHandler.Handle)
			records.Get("/:record_id", t.GetRecordHandler.Handle)
		}
	}
	return nil
}
