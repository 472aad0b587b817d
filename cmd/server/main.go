// @title DocuExtract API
// @version 1.0
// @description Upload a document and receive AI-extracted content as a summary, JSON, or key-value pairs.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docuextract/internal/config"
	"docuextract/internal/extraction"
	"docuextract/internal/extractor"
	_ "docuextract/internal/extractor/gemini" // registers the gemini provider
	"docuextract/internal/handler"
	"docuextract/internal/logger"
	"docuextract/internal/router"
	"docuextract/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	// Initialize extractor and service
	client, err := extractor.New(&cfg.Extractor, zl.Named(cfg.Extractor.Provider))
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	builder := extraction.NewBuilder(cfg.Extractor.TextModel, cfg.Extractor.MultimodalModel)
	extractionSvc := service.NewExtractionService(builder, client, zl.Named("extraction"))

	if !client.CredentialConfigured() {
		zl.Warn("server.credential_missing", zap.String("env", cfg.Extractor.APIKeyEnv))
	}

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc, zl)
	formatH := handler.NewFormatHandler()
	healthH := handler.NewHealthHandler(extractionSvc)

	// Setup router
	r := router.Setup(cfg, zl, extractionH, formatH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zl.Info("server.starting", zap.String("addr", cfg.Server.Port), zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		zl.Info("server.shutting_down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
