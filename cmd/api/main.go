package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"muhurat-planner/config"
	_ "muhurat-planner/docs" // Swagger docs
	"muhurat-planner/internal/httpserver"
	plannerHTTP "muhurat-planner/internal/planner/delivery/http"
	suntimesRepo "muhurat-planner/internal/planner/repository/suntimes"
	"muhurat-planner/internal/planner/usecase"
	"muhurat-planner/pkg/advisory"
	"muhurat-planner/pkg/log"
	"muhurat-planner/pkg/suntimes"
)

// @title       Muhurat Planner API
// @description Choghadiya segment computation and auspicious time planning for goals.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
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

	logger.Info(ctx, "Starting Muhurat Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Sun times provider: %s", cfg.SunTimes.BaseURL)

	// 3. Sun times provider + cached repository
	sunClient := suntimes.NewClient(cfg.SunTimes.BaseURL, cfg.SunTimes.Timeout)
	repo := suntimesRepo.New(sunClient, logger, cfg.Planner.CacheCapacity, cfg.Planner.CacheTTL())

	// 4. Advisory client (optional)
	var advisor usecase.Advisor
	if cfg.Advisory.Enabled {
		advisor = advisory.NewClient(cfg.Advisory.BaseURL, cfg.Advisory.Timeout)
		logger.Infof(ctx, "Advisory service enabled at %s", cfg.Advisory.BaseURL)
	} else {
		logger.Info(ctx, "Advisory service disabled, using built-in rationales")
	}

	// 5. Planner use case + HTTP handler
	plannerUC := usecase.New(logger, repo, advisor, cfg.Planner.Budget())
	plannerHandler := plannerHTTP.New(logger, plannerUC, cfg.Planner.DefaultTimezone)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Planner.RateLimitPerMin,
		PlannerHandler:  plannerHandler,
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
