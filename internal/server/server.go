package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/lista/backend/config"
	"github.com/pageza/lista/backend/internal/api"
	"github.com/pageza/lista/backend/internal/i18n"
	"github.com/pageza/lista/backend/internal/middleware"
	"github.com/pageza/lista/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New creates a new server instance. redisClient may be nil, which disables
// rate limiting.
func New(cfg *config.Config, extractor service.RecipeExtractor, redisClient *redis.Client) (*Server, error) {
	translator, err := i18n.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.ErrorHandler())

	router.GET("/health", api.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var extra []gin.HandlerFunc
	if redisClient != nil && cfg.RateLimitPerHour > 0 {
		limiter := middleware.NewExtractionRateLimiter(redisClient, cfg.RateLimitPerHour, translator)
		extra = append(extra, limiter.Middleware())
	}

	recipeHandler := api.NewRecipeHandler(extractor, translator)
	recipeHandler.RegisterRoutes(router.Group("/api"), extra...)

	return &Server{
		router: router,
		cfg:    cfg,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until SIGINT/SIGTERM and then shuts down gracefully
func (s *Server) Start() error {
	errChan := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		slog.Info("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.Stop(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	slog.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
