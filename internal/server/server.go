package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stdguard/stdguard/internal/config"
	"github.com/stdguard/stdguard/internal/review"
)

// Version is the backend API version reported by the health endpoint.
const Version = "1.0.0"

// Server is the review backend HTTP server.
type Server struct {
	echo    *echo.Echo
	engine  *review.Engine
	cfg     config.Config
	logger  *zap.Logger
	metrics *Metrics
}

// New assembles the server with its routes and middleware.
func New(engine *review.Engine, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics, registry := NewMetrics()

	s := &Server{
		echo:    e,
		engine:  engine,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(s.requestLogger())

	e.POST("/analyze", s.handleAnalyze)
	e.POST("/fix", s.handleFix)
	e.POST("/chat", s.handleChat)
	e.POST("/generate_report", s.handleGenerateReport)
	e.GET("/download_report/:filename", s.handleDownloadReport)
	e.GET("/rules", s.handleRules)
	e.GET("/health", s.handleHealth)
	e.GET("/statistics", s.handleStatistics)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return s
}

// Start listens on the configured address and blocks until shutdown.
func (s *Server) Start() error {
	s.logger.Info("backend listening",
		zap.String("addr", s.cfg.Addr()),
		zap.String("provider", s.engine.Provider().Name()),
		zap.Int("rules", len(s.engine.Rules())))
	err := s.echo.Start(s.cfg.Addr())
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.echo }

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			s.logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
			return nil
		}
	}
}
