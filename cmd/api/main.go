// @title Quiz Engine API
// @version 1.0
// @description Organization site data and a scored multiple-choice quiz.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-engine/cmd/api/docs"
	"quiz-engine/internal/adapter"
	"quiz-engine/internal/cache"
	"quiz-engine/internal/config"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/handler"
	"quiz-engine/internal/logger"
	"quiz-engine/internal/middleware"
	"quiz-engine/internal/service"
	"quiz-engine/internal/source"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Resource cache: Redis when configured, otherwise every fetch goes upstream
	var resourceCache domain.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		resourceCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis address not configured, resource caching disabled")
		resourceCache = adapter.NewNoopCache()
	}

	questionFetcher := source.NewCachedFetcher(
		source.NewFetcher(cfg.Quiz.QuestionsURL, cfg.Quiz.FetchTimeout), resourceCache, "questions", cfg.Redis.TTL)
	organizationFetcher := source.NewCachedFetcher(
		source.NewFetcher(cfg.Quiz.OrganizationURL, cfg.Quiz.FetchTimeout), resourceCache, "organization", cfg.Redis.TTL)

	questionSource := source.NewQuestionSource(questionFetcher)
	organizationSource := source.NewOrganizationSource(organizationFetcher)

	warmUp(ctx, appLogger, questionSource, organizationSource, cfg.Quiz.FetchTimeout)

	// Initialize services
	quizService := service.NewQuizService(questionSource, cfg.Quiz)
	organizationService := service.NewOrganizationService(organizationSource, cfg.Quiz.FetchTimeout)
	go service.RunEvictor(ctx, quizService, time.Minute)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	organizationHandler := handler.NewOrganizationHandler(organizationService)
	healthHandler := handler.NewHealthHandler(resourceCache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, quizHandler, organizationHandler, healthHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}

// warmUp fetches both resources in parallel so the first requests hit a
// warm cache. Failures are logged; the server starts regardless.
func warmUp(ctx context.Context, l *zap.Logger, questions domain.QuestionSource, orgs domain.OrganizationSource, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		qs, err := questions.FetchQuestions(ctx)
		if err != nil {
			return err
		}
		l.Info("Question set loaded", zap.Int("questions", len(qs)))
		return nil
	})
	g.Go(func() error {
		org, err := orgs.FetchOrganization(ctx)
		if err != nil {
			return err
		}
		l.Info("Organization data loaded",
			zap.Int("members", len(org.Members)),
			zap.Int("events", len(org.Events)),
		)
		return nil
	})
	if err := g.Wait(); err != nil {
		l.Warn("Resource warm-up failed", zap.Error(err))
	}
}
