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
	"time"

	"github.com/gin-gonic/gin"

	"sellersuite/internal/config"
	"sellersuite/internal/handler"
	"sellersuite/internal/parser"
	"sellersuite/internal/port"
	"sellersuite/internal/router"
	"sellersuite/internal/service"
	"sellersuite/internal/storage/local"
	s3storage "sellersuite/internal/storage/s3"
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
	log.SetFlags(cfg.Log.Flags())
	gin.SetMode(cfg.Log.GinMode())

	// Initialize storage
	store, err := newFileStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Storage.Backend, err)
	}

	// Initialize parsers
	registry := parser.NewRegistry(cfg.Portals.Supported)
	log.Printf("Supported portals: %v", registry.SupportedPortals())

	// Initialize services
	ingestSvc := service.NewIngestService(store, registry, parser.NewAmazonParser(), &cfg.Storage)
	reportSvc := service.NewReportService(store, ingestSvc)

	// Initialize handlers
	healthH := handler.NewHealthHandler(store)
	uploadH := handler.NewUploadHandler(ingestSvc)
	reportH := handler.NewReportHandler(reportSvc)

	// Setup router
	r := router.Setup(cfg, healthH, uploadH, reportH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (storage: %s)", cfg.Server.Port, cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newFileStore(cfg *config.Config) (port.FileStore, error) {
	if cfg.Storage.Backend == config.StorageS3 {
		return s3storage.NewS3Client(&cfg.S3)
	}
	return local.NewLocalStore(&cfg.Storage)
}
