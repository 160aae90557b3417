package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Gateway
	ChatHandler    Handler
	AnalyzeHandler Handler

	// Records
	ListRecordsHandler Handler
	GetRecordHandler   Handler

	// Misc
	GetVersionHandler Handler
}
