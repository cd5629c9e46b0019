package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/parkspot/internal/pkg/config"
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/health"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/middleware"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/pkg/server"
	"github.com/piresc/parkspot/internal/utils"
	notificationGW "github.com/piresc/parkspot/services/notification/gateway"
	paymentHandler "github.com/piresc/parkspot/services/payment/handler"
	paymentRepo "github.com/piresc/parkspot/services/payment/repository"
	paymentUC "github.com/piresc/parkspot/services/payment/usecase"
	penaltyHandler "github.com/piresc/parkspot/services/penalty/handler"
	penaltyRepo "github.com/piresc/parkspot/services/penalty/repository"
	penaltyUC "github.com/piresc/parkspot/services/penalty/usecase"
	reservationHandler "github.com/piresc/parkspot/services/reservation/handler"
	reservationRepo "github.com/piresc/parkspot/services/reservation/repository"
	"github.com/piresc/parkspot/services/reservation/sweeper"
	reservationUC "github.com/piresc/parkspot/services/reservation/usecase"
	spotHandler "github.com/piresc/parkspot/services/spot/handler"
	spotRepo "github.com/piresc/parkspot/services/spot/repository"
	spotUC "github.com/piresc/parkspot/services/spot/usecase"
	userHandler "github.com/piresc/parkspot/services/user/handler"
	userRepo "github.com/piresc/parkspot/services/user/repository"
	userUC "github.com/piresc/parkspot/services/user/usecase"
	walletHandler "github.com/piresc/parkspot/services/wallet/handler"
	walletRepo "github.com/piresc/parkspot/services/wallet/repository"
	walletUC "github.com/piresc/parkspot/services/wallet/usecase"
)

func main() {
	appName := "parking-service"
	configs, err := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/parking.env"))
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
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			bootLogger.Warn("New Relic connection timeout", logger.Err(err))
		}
		if zapLogger, err = logger.InitZapLoggerFromConfig(configs, nrApp); err != nil {
			log.Fatalf("Failed to create Zap logger: %v", err)
		}
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	db := postgresClient.GetDB()
	transactor := database.NewTransactor(db)

	// Repositories
	walletRepository := walletRepo.NewWalletRepository(configs, db)
	penaltyRepository := penaltyRepo.NewPenaltyRepository(configs, db)
	paymentRepository := paymentRepo.NewPaymentRepository(configs, db)
	reservationRepository := reservationRepo.NewReservationRepository(configs, db)
	spotRepository := spotRepo.NewSpotRepository(configs, db)
	spotCache := spotRepo.NewSpotCache(configs, redisClient)
	userRepository := userRepo.NewUserRepository(configs, db)

	// Gateways
	notifier := notificationGW.NewNATSNotifier(configs, natsClient, zapLogger)

	// Use cases
	wallets := walletUC.NewWalletUC(configs, walletRepository, zapLogger)
	spots := spotUC.NewSpotUC(configs, spotRepository, spotCache, zapLogger)
	users := userUC.NewUserUC(configs, userRepository, wallets, transactor, zapLogger)
	penalties := penaltyUC.NewPenaltyUC(configs, penaltyRepository, reservationRepository, wallets, transactor, zapLogger)
	reservations := reservationUC.NewReservationUC(configs, reservationRepository, spots, users, penalties, notifier, zapLogger)
	payments := paymentUC.NewPaymentUC(configs, paymentRepository, reservationRepository, spots, users, wallets, notifier, transactor, zapLogger)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	m := middleware.NewMiddleware(middleware.Config{
		Logger:      zapLogger,
		APIKeys:     configs.APIKeys,
		ServiceName: appName,
	})
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(m.Handler())

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api/v1")
	reservationRoutes := reservationHandler.NewHandler(reservations, configs, zapLogger)
	reservationRoutes.RegisterRoutes(api)
	reservationRoutes.RegisterInternalRoutes(api.Group("/internal", m.APIKeyHandler("scheduler")))
	paymentHandler.NewHandler(payments, zapLogger).RegisterRoutes(api)
	penaltyHandler.NewHandler(penalties, zapLogger).RegisterRoutes(api)
	walletHandler.NewHandler(wallets, zapLogger).RegisterRoutes(api)
	userHandler.NewHandler(users, zapLogger).RegisterRoutes(api)
	spotHandler.NewHandler(spots, zapLogger).RegisterRoutes(api)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweeper.NewSweeper(configs, reservations, nrApp, zapLogger).Run(ctx)
	}()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
	stop()
	<-sweepDone

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
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
