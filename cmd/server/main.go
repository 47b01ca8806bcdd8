package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"mesaYaApi/internal/config"
	notificationsinfra "mesaYaApi/internal/modules/notifications/infrastructure"
	notifications "mesaYaApi/internal/modules/notifications/application/usecase"
	realtimehandler "mesaYaApi/internal/modules/realtime/application/handler"
	realtimeusecase "mesaYaApi/internal/modules/realtime/application/usecase"
	realtimeinfra "mesaYaApi/internal/modules/realtime/infrastructure"
	realtimetransport "mesaYaApi/internal/modules/realtime/interface"
	reservationsinfra "mesaYaApi/internal/modules/reservations/infrastructure"
	reservationsport "mesaYaApi/internal/modules/reservations/application/port"
	reservationsusecase "mesaYaApi/internal/modules/reservations/application/usecase"
	reservationstransport "mesaYaApi/internal/modules/reservations/interface"
	restaurantsinfra "mesaYaApi/internal/modules/restaurants/infrastructure"
	restaurantsusecase "mesaYaApi/internal/modules/restaurants/application/usecase"
	restaurantstransport "mesaYaApi/internal/modules/restaurants/interface"
	usersinfra "mesaYaApi/internal/modules/users/infrastructure"
	usersport "mesaYaApi/internal/modules/users/application/port"
	usersusecase "mesaYaApi/internal/modules/users/application/usecase"
	userstransport "mesaYaApi/internal/modules/users/interface"
	"mesaYaApi/internal/platform/broker"
	"mesaYaApi/internal/platform/database"
	"mesaYaApi/internal/platform/metrics"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/logging"
)

func main() {
	// Load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	// Storage
	models := make([]any, 0)
	models = append(models, reservationsinfra.Migrations()...)
	models = append(models, restaurantsinfra.Migrations()...)
	models = append(models, usersinfra.Migrations()...)
	db, err := database.Open(database.Options{
		DSN:             cfg.Database.DSN(),
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Debug:           cfg.Server.Env == "development",
	}, models...)
	if err != nil {
		slog.Error("database init failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("database connected", slog.String("host", cfg.Database.Host), slog.String("name", cfg.Database.Name))

	reservationRepo := reservationsinfra.NewGormReservationRepository(db)
	restaurantRepo := restaurantsinfra.NewGormRestaurantRepository(db)
	userRepo := usersinfra.NewGormUserRepository(db)

	// Notifications
	var dispatcher *notifications.Dispatcher
	if cfg.Mail.BaseURL != "" {
		mailer := notificationsinfra.NewMailHTTPClient(cfg.Mail.BaseURL, cfg.Mail.Timeout, nil)
		dispatcher = notifications.NewDispatcher(mailer)
	} else {
		slog.Warn("mail service not configured, notifications disabled")
	}

	// Realtime
	hub := realtimeinfra.NewHub()
	feed := realtimeusecase.NewReservationFeed(reservationRepo)
	broadcaster := realtimeusecase.NewBroadcaster(hub)

	// Broker
	kafkaPublisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers)
	events := broker.NewFanoutPublisher(broadcaster, kafkaPublisher)

	registry := realtimeinfra.NewHandlerRegistry()
	for _, topic := range cfg.Kafka.Topics {
		registry.Register(realtimehandler.NewReservationStreamHandler(topic, nil, hub, feed))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)

	// Use cases
	var notifier reservationsport.ReservationNotifier
	if dispatcher != nil {
		notifier = dispatcher
	}
	workflow := reservationsusecase.NewReservationWorkflow(
		reservationRepo,
		reservationsinfra.NewRestaurantDirectoryAdapter(restaurantRepo),
		reservationsinfra.NewUserDirectoryAdapter(userRepo),
		notifier,
		events,
		cfg.Reservations.SlotCapacity,
	)
	catalog := restaurantsusecase.NewCatalog(restaurantRepo)
	insightsFetcher := restaurantsinfra.NewInsightsHTTPClient(cfg.Insights.BaseURL, cfg.Insights.APIKey, cfg.Insights.Timeout, nil)
	insights := restaurantsusecase.NewInsights(restaurantRepo, insightsFetcher)
	var welcome usersport.WelcomeMailer
	if dispatcher != nil {
		welcome = dispatcher
	}
	registrar := usersusecase.NewRegistrar(userRepo, welcome)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	m := metrics.New(cfg.Metrics.Prefix)
	e.Use(m.Middleware)

	validator := auth.NewJWTValidatorWithPublicKey(cfg.Security.JWTSecret, cfg.Security.JWTPublicKey)

	public := e.Group("/api/v1")
	authed := e.Group("/api/v1", auth.Middleware(validator))

	reservationstransport.NewHandler(workflow, restaurantRepo).Register(authed)
	restaurantstransport.NewHandler(catalog, insights).Register(public, authed)
	userstransport.NewHandler(registrar).Register(public, authed)

	wsHandler := realtimetransport.NewWebsocketHandler(hub, feed, validator, restaurantRepo)
	e.GET("/ws/:entity/:section", wsHandler)

	e.GET("/metrics", m.Handler())
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()
	slog.Info("server started", slog.String("port", cfg.Server.Port), slog.String("env", cfg.Server.Env))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
	}
	if err := kafkaPublisher.Close(); err != nil {
		slog.Warn("kafka close error", slog.Any("error", err))
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
