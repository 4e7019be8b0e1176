package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postcraft-backend/internal/config"
	"postcraft-backend/internal/handlers"
	"postcraft-backend/internal/logging"
	"postcraft-backend/internal/router"
	"postcraft-backend/internal/services"
	"postcraft-backend/internal/static"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Env)
	log.Info("starting postcraft backend")

	if err := static.Ensure(cfg.StaticDir); err != nil {
		log.Error(err, "static directory setup failed", "dir", cfg.StaticDir)
		os.Exit(1)
	}

	llmService := services.NewLLMService(cfg, log.WithName("llm"))
	if llmService.Live() {
		log.Info("OpenAI client initialized", "model", cfg.OpenAIModel)
	} else {
		log.Info("no OPENAI_API_KEY set, serving mock responses")
	}

	postHandler := handlers.NewPostHandler(llmService, log.WithName("handlers"))
	r := router.New(cfg, postHandler, log.WithName("http"))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
		// Write timeout must outlast the provider call budget.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ProviderTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Error(err, "server error")
		os.Exit(1)
	}
}
