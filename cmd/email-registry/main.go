package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/catalog"
	"stoik.com/emailregistry/internal/client"
	"stoik.com/emailregistry/internal/config"
	"stoik.com/emailregistry/internal/core/port"
	"stoik.com/emailregistry/internal/core/service"
	"stoik.com/emailregistry/internal/infrastructure/amqp"
	"stoik.com/emailregistry/internal/metrics"
	"stoik.com/emailregistry/internal/server"
	"stoik.com/emailregistry/internal/storage"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	emailCatalog := catalog.Default()
	if cfg.CatalogFile != "" {
		emailCatalog, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}
	log.WithField("clients", emailCatalog.Clients()).Info("Catalog loaded")

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}
	emailsStorage := storage.NewEmailsStorage(db)

	// Publishing is optional; without a broker batches are only stored.
	var notifier port.NotifierClient
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to create AMQP client: %v", err)
		}
		defer amqpClient.Close()

		if err := amqp.NewTopologyManager(amqpClient).Setup(); err != nil {
			log.Fatalf("Failed to setup AMQP topology: %v", err)
		}
		notifier = client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))
	} else {
		log.Warn("AMQP_URL not set, registered batches will not be published")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registrationService := service.NewRegistrationService(
		emailsStorage,
		notifier,
		emailCatalog,
		metrics.New(registry),
		cfg.MaxBatchSize,
	)
	searchService := service.NewSearchService(emailsStorage, cfg.MaxPageSize)

	httpServer := server.NewHTTPServer(registrationService, searchService, validator.New(), registry)

	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Email registry service started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down email registry service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
