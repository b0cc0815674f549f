package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/volunteerhub/volunteerhub-api/internal/config"
	"github.com/volunteerhub/volunteerhub-api/internal/database"
	"github.com/volunteerhub/volunteerhub-api/internal/handler"
	"github.com/volunteerhub/volunteerhub-api/internal/middleware"
	"github.com/volunteerhub/volunteerhub-api/internal/models"
	"github.com/volunteerhub/volunteerhub-api/internal/repository"
	"github.com/volunteerhub/volunteerhub-api/internal/router"
	"github.com/volunteerhub/volunteerhub-api/internal/service"
	"github.com/volunteerhub/volunteerhub-api/pkg/certificate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(database.PostgresConfig{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.Team{}, &models.HelpRequest{}, &models.ImpactLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	issuer, err := certificate.New(certificate.Config{OutputDir: cfg.CertificateDir}, logger)
	if err != nil {
		log.Fatalf("failed to create certificate renderer: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	impactRepo := repository.NewImpactRepository(db)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	helpRequestRepo := repository.NewHelpRequestRepository(db)

	impactService := service.NewImpactService(impactRepo, userRepo, issuer, redisClient, service.ImpactConfig{
		PointsPerHour:   cfg.PointsPerHour,
		Milestones:      cfg.Milestones,
		LeaderboardSize: cfg.LeaderboardSize,
		CacheTTL:        cfg.LeaderboardCacheTTL,
	}, validate, logger)
	userService := service.NewUserService(userRepo, service.UserConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}, validate, logger)
	eventService := service.NewEventService(eventRepo, userRepo, validate, logger)
	teamService := service.NewTeamService(teamRepo, userRepo, validate, logger)
	helpRequestService := service.NewHelpRequestService(helpRequestRepo, userRepo, validate, logger)

	userHandler := handler.NewUserHandler(userService, logger)
	impactHandler := handler.NewImpactHandler(impactService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	teamHandler := handler.NewTeamHandler(teamService, logger)
	helpRequestHandler := handler.NewHelpRequestHandler(helpRequestService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: cfg.CORSAllowOrigins})
	router.Register(app, cfg, router.Dependencies{
		UserHandler:        userHandler,
		ImpactHandler:      impactHandler,
		EventHandler:       eventHandler,
		TeamHandler:        teamHandler,
		HelpRequestHandler: helpRequestHandler,
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
