package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Toylycker/Travel-Agency/internal/config"
	"github.com/Toylycker/Travel-Agency/internal/database"
	"github.com/Toylycker/Travel-Agency/internal/handler"
	"github.com/Toylycker/Travel-Agency/internal/logging"
	middlewarepkg "github.com/Toylycker/Travel-Agency/internal/middleware"
	"github.com/Toylycker/Travel-Agency/internal/repository"
	"github.com/Toylycker/Travel-Agency/internal/router"
	"github.com/Toylycker/Travel-Agency/internal/service"
)

func main() {
	if err := run(); err != nil {
		fallback := logging.New(logging.Config{})
		fallback.Fatal().Err(err).Msg("api stopped")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &logger

	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	placesRepo := repository.NewPGXPlacesRepository(pool)
	postsRepo := repository.NewPGXPostsRepository(pool)
	hotelsRepo := repository.NewPGXHotelsRepository(pool)
	toursRepo := repository.NewPGXToursRepository(pool)
	mediaRepo := repository.NewPGXMediaRepository(pool)
	refsRepo := repository.NewPGXReferencesRepository(pool)
	messagesRepo := repository.NewPGXMessagesRepository(pool)

	e := newServer(cfg, logger, router.Handlers{
		Health:  handler.NewHealthHandler(pool),
		Places:  handler.NewPlacesHandler(service.NewPlacesService(placesRepo, refsRepo, mediaRepo)),
		Blog:    handler.NewBlogHandler(service.NewPostsService(postsRepo, refsRepo, mediaRepo)),
		Hotels:  handler.NewHotelsHandler(service.NewHotelsService(hotelsRepo, refsRepo, mediaRepo)),
		Tours:   handler.NewToursHandler(service.NewToursService(toursRepo, hotelsRepo, mediaRepo)),
		Contact: handler.NewContactHandler(service.NewContactService(messagesRepo, cfg.DefaultPhoneRegion)),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("http server listening")
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// newServer builds the echo instance with the middleware chain and routes.
func newServer(cfg *config.Config, logger zerolog.Logger, handlers router.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.JSONSerializer{}

	e.Use(middlewarepkg.RequestID(logger))
	e.Use(middlewarepkg.Logging())
	e.Use(middlewarepkg.Metrics())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORSAllowedOrigins}))
	if cfg.RequestTimeout > 0 {
		e.Use(echoMiddleware.ContextTimeoutWithConfig(echoMiddleware.ContextTimeoutConfig{Timeout: cfg.RequestTimeout}))
	}

	router.Register(e, cfg, handlers)
	return e
}
