package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	handlers "github.com/SRHSoulja/pengubook-backend/internal/adapter/handler/http"
	"github.com/SRHSoulja/pengubook-backend/internal/config"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/chain"
	"github.com/SRHSoulja/pengubook-backend/internal/infrastructure/database"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/csrf"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/ratelimit"
	"github.com/SRHSoulja/pengubook-backend/internal/usecase"
	"github.com/SRHSoulja/pengubook-backend/pkg/logger"
)

// Server wires the echo engine, middleware and handlers together.
type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
	redis  *redis.Client
	chain  chain.Service
}

// NewServer creates the HTTP server with its middleware stack.
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	repos *database.Repositories,
	redisClient *redis.Client,
	chainService chain.Service,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(logger.NewEchoRequestLogger(log))

	return &Server{
		config: cfg,
		logger: log,
		echo:   e,
		repos:  repos,
		redis:  redisClient,
		chain:  chainService,
	}
}

// Start sets up routes and serves until Shutdown.
func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	csrfService := usecase.NewCsrfService(s.logger, usecase.CsrfConfig{
		TokenTTL:      s.config.CSRF.TokenTTL,
		UsedRetention: s.config.CSRF.UsedRetention,
	}, s.repos.CsrfToken)
	eraser := usecase.NewAccountEraser(s.logger, s.repos.Account, s.repos.AuditLog)
	exporter := usecase.NewDataExporter(s.logger, s.repos.Account)
	gate := usecase.NewTokenGateService(s.logger, s.repos.Community, s.chain)

	csrfConfig := csrf.Config{
		Service:      csrfService,
		Logger:       s.logger,
		Secure:       s.config.Service.Production(),
		CookieMaxAge: s.config.CSRF.CookieMaxAge,
	}

	accountHandler := handlers.NewAccountHandler(eraser, exporter, s.logger)
	csrfHandler := handlers.NewCsrfHandler(csrfConfig, s.logger)
	gateHandler := handlers.NewGateHandler(gate, s.logger)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
		},
	}

	v1 := s.echo.Group("/api/v1")

	protected := v1.Group("", auth.JWTMiddleware(jwtConfig), csrf.Middleware(csrfConfig))

	protected.GET("/csrf/token", csrfHandler.IssueToken)
	protected.GET("/account/export", accountHandler.ExportAccount)
	protected.GET("/communities/:id/gate", gateHandler.CheckAccess)

	deletionLimiter := ratelimit.Middleware(ratelimit.Config{
		Client:    s.redis,
		Logger:    s.logger,
		KeyPrefix: "ratelimit:account_delete:",
		Limit:     s.config.RateLimit.DeletionLimit,
		Window:    s.config.RateLimit.DeletionWindow,
	})
	protected.DELETE("/account", accountHandler.DeleteAccount, deletionLimiter)
}
