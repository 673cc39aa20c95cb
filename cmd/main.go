package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-planner-service/internal/app/config"
	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-planner-service/internal/app/service"
	"github.com/ijalalfrz/travel-planner-service/internal/app/transport"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/itinerary"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/googleflights"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/googlehotels"
	"github.com/redis/go-redis/v9"
)

// @title           Travel Planner Service API
// @version         0.0.1
// @description     travel-planner-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel, os.Stdout)

	slog.Debug("config loaded successfully", slog.String("log_level", string(cfg.LogLevel)))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	providerConfig := provider.Config{
		BaseURL:      cfg.SerpAPI.BaseURL,
		APIKey:       cfg.SerpAPI.APIKey,
		Timeout:      cfg.SerpAPI.Timeout,
		MaxRetries:   cfg.SerpAPI.MaxRetries,
		RateLimitRPS: cfg.SerpAPI.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
		Currency:     cfg.SerpAPI.Currency,
		Language:     cfg.SerpAPI.Language,
		Country:      cfg.SerpAPI.Country,
	}

	plannerService := service.NewPlannerService(
		googleflights.NewProvider(providerConfig),
		googlehotels.NewProvider(providerConfig),
		initItineraryPlanner(ctx, cfg),
		flight.NewOfferCache(redisClient),
		cfg.Cache.Expiration,
		cfg.Cache.LockTimeout,
	)

	// init service endpoint
	return endpoints.MakeEndpoints(plannerService)
}

// initItineraryPlanner returns nil when no LLM is configured, which turns
// trip planning into a plain flight and hotel search.
func initItineraryPlanner(ctx context.Context, cfg *config.Config) service.ItineraryPlanner {
	if !cfg.LLM.Enabled() {
		slog.WarnContext(ctx, "GEMINI_API_KEY not set, itinerary generation disabled")
		return nil
	}

	planner, err := itinerary.NewGeminiPlanner(ctx, itinerary.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to init itinerary planner", slog.String("error", err.Error()))
		panic(err)
	}

	return planner
}
