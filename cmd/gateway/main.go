package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/VigilAI/VigilGate/pkg/analyzer"
	"github.com/VigilAI/VigilGate/pkg/config"
	"github.com/VigilAI/VigilGate/pkg/database"
	"github.com/VigilAI/VigilGate/pkg/detectors/strict"
	"github.com/VigilAI/VigilGate/pkg/domain/record"
	handlers "github.com/VigilAI/VigilGate/pkg/handlers/http"
	"github.com/VigilAI/VigilGate/pkg/infra/auditlogs"
	infraCache "github.com/VigilAI/VigilGate/pkg/infra/cache"
	infraLogger "github.com/VigilAI/VigilGate/pkg/infra/logger"
	"github.com/VigilAI/VigilGate/pkg/infra/providers"
	"github.com/VigilAI/VigilGate/pkg/infra/providers/factory"
	"github.com/VigilAI/VigilGate/pkg/infra/providers/mock"
	"github.com/VigilAI/VigilGate/pkg/infra/repository"
	"github.com/VigilAI/VigilGate/pkg/policy"
	"github.com/VigilAI/VigilGate/pkg/proxy"
	"github.com/VigilAI/VigilGate/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	var repo record.Repository
	if cfg.Database.Enabled {
		db, err := database.NewDB(logger, cfg.Database)
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		defer db.Close()
		repo = repository.NewRecordRepository(db.DB)
	} else {
		logger.Info("no database configured, records are kept in memory")
		repo = repository.NewMemoryRepository()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Redis.Enabled {
		redisClient, err := infraCache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		repo = infraCache.NewCachedRepository(repo, redisClient, logger)
	}

	upstreamClient, err := buildProviderClient(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize provider client: %v", err)
	}
	forwarder := proxy.New(upstreamClient, cfg.Provider, logger)

	riskAnalyzer, err := analyzer.New(cfg.Analyzer, logger)
	if err != nil {
		logger.Fatalf("failed to initialize analyzer: %v", err)
	}
	screener, err := strict.NewScreener(strict.Config{}, logger)
	if err != nil {
		logger.Fatalf("failed to initialize violation screener: %v", err)
	}
	engine := policy.NewEngine(cfg.Policy, screener, logger)

	audit, err := auditlogs.NewService(cfg.Audit.Path, logger, cfg.Audit.Enabled)
	if err != nil {
		logger.Fatalf("failed to open audit trail: %v", err)
	}
	defer audit.Close()

	handlerTransport := handlers.HandlerTransport{
		ChatHandler:        handlers.NewChatHandler(logger, forwarder, riskAnalyzer, engine, repo, audit),
		AnalyzeHandler:     handlers.NewAnalyzeHandler(logger, forwarder, riskAnalyzer, engine, repo, audit),
		ListRecordsHandler: handlers.NewListRecordsHandler(logger, repo),
		GetRecordHandler:   handlers.NewGetRecordHandler(logger, repo),
		GetVersionHandler:  handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewGatewayServer(server.GatewayServerDI{
		HandlerTransport: handlerTransport,
		Config:           cfg,
		Logger:           logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down gateway")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("shutdown failed")
	}
}

func buildProviderClient(cfg *config.Config) (providers.Client, error) {
	if cfg.Provider.UseMock {
		return mock.NewMockClient(), nil
	}
	return factory.NewProviderLocator().Get(cfg.Provider.Name)
}
