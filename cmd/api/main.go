package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"icook-chatbot/config"
	_ "icook-chatbot/docs" // Swagger docs
	"icook-chatbot/internal/httpserver"
	lineDelivery "icook-chatbot/internal/reply/delivery/line"
	"icook-chatbot/internal/reply/templates"
	"icook-chatbot/internal/reply/usecase"
	"icook-chatbot/internal/router"
	"icook-chatbot/pkg/icook"
	"icook-chatbot/pkg/line"
	"icook-chatbot/pkg/log"
	"icook-chatbot/pkg/market"
	"icook-chatbot/pkg/sensor"
)

// @title       iCook Chatbot API
// @description LINE chatbot for recipe search, seasonal recommendations and market order lookup.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments configure via environment.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting iCook Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Variant features: news=%t sensor=%t", cfg.Features.News, cfg.Features.Sensor)

	// 3. Platform client
	lineClient, err := line.NewClient(cfg.Line.ChannelAccessToken)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LINE client: ", err)
		return
	}

	// 4. Upstream clients
	icookClient := icook.NewClient(icook.Config{
		BaseURL:        cfg.ICook.BaseURL,
		UserAgent:      cfg.ICook.UserAgent,
		Timeout:        cfg.ICook.Timeout,
		RequestsPerSec: cfg.ICook.RequestsPerSec,
	})
	marketClient := market.NewClient(cfg.Market.URL, cfg.Market.SigningKey, cfg.Market.Timeout)
	sensorClient := sensor.NewClient(cfg.Sensor.URL, cfg.Sensor.AccessToken, cfg.Sensor.Timeout)

	// 5. Reply domain
	features := router.Features{News: cfg.Features.News, Sensor: cfg.Features.Sensor}
	replyUC := usecase.New(
		logger,
		icookClient,
		marketClient,
		sensorClient,
		lineClient,
		templates.New(),
		features,
		cfg.Cache.KeywordTTL,
	)
	webhookHandler := lineDelivery.New(logger, replyUC, router.New(features), lineClient, cfg.Line.ChannelSecret)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
