package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sentinel-dakar/flood_reporting_system/internal/config"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geocoding"
	v1 "github.com/sentinel-dakar/flood_reporting_system/internal/handler/http/v1"
	"github.com/sentinel-dakar/flood_reporting_system/internal/push"
	"github.com/sentinel-dakar/flood_reporting_system/internal/repository"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
	"github.com/sentinel-dakar/flood_reporting_system/internal/storage"
	"github.com/sentinel-dakar/flood_reporting_system/internal/webhook"
	"github.com/sentinel-dakar/flood_reporting_system/pkg/logger"
	"github.com/sentinel-dakar/flood_reporting_system/pkg/postgres"
	redisclient "github.com/sentinel-dakar/flood_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/sentinel-dakar/flood_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Sentinel Dakar Flood Reporting API
// @version 1.0
// @description Backend for citizen flood reports, damage declarations, assistance requests and geo-targeted alert notifications in Dakar.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	userRepo := repository.NewUserRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool, redisClient)
	reportRepo := repository.NewReportRepository(dbpool)
	damageRepo := repository.NewDamageRepository(dbpool)
	assistanceRepo := repository.NewAssistanceRepository(dbpool)
	subscriptionRepo := repository.NewSubscriptionRepository(dbpool)
	sensorRepo := repository.NewSensorRepository(dbpool)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	geocoder := geocoding.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderRegion, cfg.GeocoderTimeout, log)
	sender := push.NewWebpushSender(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject, cfg.PushTTL, cfg.PushTimeout)
	media := storage.NewDiskMediaStore(cfg.MediaRoot, cfg.PublicBaseURL)

	authService := service.NewAuthService(userRepo, tokens, log)
	alertService := service.NewAlertService(alertRepo, log)
	reportService := service.NewReportService(reportRepo, geocoder, webhookPublisher, log)
	reliefService := service.NewReliefService(damageRepo, assistanceRepo, log)
	notificationService := service.NewNotificationService(
		subscriptionRepo,
		reportRepo,
		alertRepo,
		sender,
		webhookPublisher,
		log,
		service.NotificationServiceOptions{
			VAPIDPublicKey:    cfg.VAPIDPublicKey,
			DefaultRadiusKm:   cfg.DefaultRadiusKm,
			PresenceMatchUser: cfg.PresenceMatchUser,
		},
	)
	sensorService := service.NewSensorService(sensorRepo, log)

	handler := v1.NewHandler(v1.HandlerDeps{
		AuthService:         authService,
		AlertService:        alertService,
		ReportService:       reportService,
		ReliefService:       reliefService,
		NotificationService: notificationService,
		SensorService:       sensorService,
		Tokens:              tokens,
		Media:               media,
		Logger:              log,
		Config:              cfg,
	})

	router := gin.Default()
	router.Use(v1.IdentifyMiddleware(tokens, log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.Static("/media", cfg.MediaRoot)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
