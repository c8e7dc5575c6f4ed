package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/client"
	"stoik.com/emailregistry/internal/config"
	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/service"
	"stoik.com/emailregistry/internal/handler"
	"stoik.com/emailregistry/internal/infrastructure/amqp"
	"stoik.com/emailregistry/internal/storage"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	notifier := client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))

	db, err := storage.NewPostgresDB(context.Background(), cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	emailsStorage := storage.NewEmailsStorage(db)

	if err := amqp.NewTopologyManager(amqpClient).Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	fraudDetectionService := service.NewFraudDetectionService(emailsStorage, notifier)
	messageHandler := handler.NewAMQPConsumer(
		fraudDetectionService,
		validator.New(),
		cfg.Workers,
		cfg.QueueSize,
	)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	messageHandler.Start(workerCtx)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()

	consumer := amqp.NewConsumer(amqpClient, messageHandler, cfg.Workers)
	if err := consumer.Consume(consumeCtx, domain.EmailAnalysisQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Fraud detection service started successfully")
	log.Infof("Consuming messages from queue: %s", domain.EmailAnalysisQueue)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-amqpClient.ConnectionLost():
		log.Error("AMQP connection lost")
	}

	log.Info("Shutting down fraud detection service...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	// Stop taking deliveries, then let the workers drain what is queued.
	consumeCancel()
	messageHandler.Stop(stopCtx)
	workerCancel()
}
