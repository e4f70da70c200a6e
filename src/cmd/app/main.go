package main

import (
	"context"
	"fmt"
	"kerjabantu-service/src/internal/config"
	"kerjabantu-service/src/pkg/log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
)

func main() {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := config.NewRedis(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to connect to redis: %v", err), "main", "")
		os.Exit(1)
	}
	catalog, closeCatalog, err := config.NewCatalogRepository(viperConfig, logger)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to open catalog: %v", err), "main", "")
		os.Exit(1)
	}
	defer closeCatalog()

	publisher, closePublisher, err := config.NewKafkaPublisher(viperConfig, logger)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start kafka producer: %v", err), "main", "")
		os.Exit(1)
	}
	defer closePublisher()

	geocoder, err := config.NewGeocoder(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to create geocoder: %v", err), "main", "")
		os.Exit(1)
	}

	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer := config.NewAsynqServer(viperConfig, logger)
	var mux *asynq.ServeMux
	if asynqServer != nil {
		mux = asynq.NewServeMux()
	}

	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	application, err := config.Bootstrap(ctx, &config.BootstrapConfig{
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Catalog:     catalog,
		Sessions:    config.NewSessionRepository(viperConfig, redisClient),
		Publisher:   publisher,
		Geocoder:    geocoder,
		AsynqClient: asynqClient,
		Async:       mux,
	})
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to bootstrap: %v", err), "main", "")
		os.Exit(1)
	}

	scheduler, err := config.NewScheduler(ctx, viperConfig, logger, application.Sessions, application.WalletLimiter)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to create scheduler: %v", err), "main", "")
		os.Exit(1)
	}
	scheduler.Start()

	if asynqServer != nil {
		if err := asynqServer.Start(mux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "main", "")
			os.Exit(1)
		}
	}

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("main", "Server kerjabantu-service is shutting down...", "graceful", "")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	<-scheduler.Stop().Done()
	if asynqServer != nil {
		asynqServer.Shutdown()
	}
	if asynqClient != nil {
		asynqClient.Close()
	}

	// flush sessions still held in memory
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	application.Sessions.EvictIdle(saveCtx, 0)
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
