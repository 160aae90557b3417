package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VigilAI/VigilGate/pkg/config"
	handlers "github.com/VigilAI/VigilGate/pkg/handlers/http"
	"github.com/VigilAI/VigilGate/pkg/server/router"
)

type (
	GatewayServerDI struct {
		HandlerTransport handlers.HandlerTransport
		Config           *config.Config
		Logger           *logrus.Logger
	}
	GatewayServer struct {
		*BaseServer
		handlerTransport handlers.HandlerTransport
	}
)

func NewGatewayServer(di GatewayServerDI) *GatewayServer {
	return &GatewayServer{
		BaseServer:       NewBaseServer(di.Config, di.Logger),
		handlerTransport: di.HandlerTransport,
	}
}

func (s *GatewayServer) Run() error {
	s.WithRouters(router.NewGatewayRouter(s.handlerTransport))
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting gateway server")
	return s.Router.Listen(addr)
}

func (s *GatewayServer) Shutdown() error {
	return s.Router.Shutdown()
}
