package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/config"
	"github.com/piresc/parkspot/internal/pkg/health"
	"github.com/piresc/parkspot/internal/pkg/logger"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/pkg/server"
	notificationHandler "github.com/piresc/parkspot/services/notification/handler"
	"github.com/piresc/parkspot/services/notification/sender"
	notificationUC "github.com/piresc/parkspot/services/notification/usecase"
)

func main() {
	appName := "notification-service"
	configs, err := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/notifier.env"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}

	nrApp := nrpkg.InitNewRelic(configs, bootLogger)
	zapLogger := bootLogger
	if nrApp != nil {
		if zapLogger, err = logger.InitZapLoggerFromConfig(configs, nrApp); err != nil {
			log.Fatalf("Failed to create Zap logger: %v", err)
		}
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("provider", configs.Notification.Provider),
		logger.Bool("simulation", configs.Notification.SimulationMode))

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	emailSender := sender.NewEmailSender(configs, zapLogger)
	notifications := notificationUC.NewNotificationUC(configs, emailSender, zapLogger)

	consumers := notificationHandler.NewHandler(notifications, natsClient, configs.NATS.QueueGroup, zapLogger)
	if err := consumers.Start(); err != nil {
		zapLogger.Fatal("Failed to start NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
	shutdown.Register("consumers", func(context.Context) error { consumers.Stop(); return nil })
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error { nrApp.Shutdown(5 * time.Second); return nil })
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
	zapLogger.Info("Application stopped", logger.String("app", appName))
}
