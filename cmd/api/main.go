// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/autovoice/voice-showroom/internal/config"
	"github.com/autovoice/voice-showroom/internal/gateway"
	"github.com/autovoice/voice-showroom/internal/handler"
	"github.com/autovoice/voice-showroom/internal/inventory"
	"github.com/autovoice/voice-showroom/internal/middleware"
	"github.com/autovoice/voice-showroom/internal/service"
	"github.com/autovoice/voice-showroom/pkg/logger"
	"github.com/autovoice/voice-showroom/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "voice-showroom", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Seed the catalog
	store := inventory.NewMemStore()

	// Initialize the assistant gateway. A missing credential degrades the
	// AI-backed routes to 503 instead of failing the process.
	var assistant gateway.Assistant
	if cfg.OpenAIConfigured() {
		assistant, err = gateway.NewOpenAIAssistant(cfg.OpenAIAPIKey, cfg.ChatModel)
		if err != nil {
			log.Warn("failed to create OpenAI client, assistant features disabled", zap.Error(err))
			assistant = nil
		}
	} else {
		log.Warn("OPENAI_API_KEY not set, assistant features disabled")
	}

	// Initialize services
	chatSvc := service.NewChatService(store, assistant, log, cfg.GatewayTimeout, cfg.TTSVoice)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(store, chatSvc)
	carHandler := handler.NewCarHandler(store, log)
	assistantHandler := handler.NewAssistantHandler(chatSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Get("/config", assistantHandler.Config)

		r.Route("/cars", func(r chi.Router) {
			r.Get("/", carHandler.List)
			// The static search route must be registered alongside the
			// id wildcard; chi matches it first.
			r.Get("/search", carHandler.Search)
			r.Get("/{id}", carHandler.Get)
		})

		r.Post("/transcribe", assistantHandler.Transcribe)
		r.Post("/chat", assistantHandler.Chat)
		r.Post("/tts", assistantHandler.TTS)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
