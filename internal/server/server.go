// Package server wires the application together and manages the HTTP
// server lifecycle: database connection, migrations, services,
// handlers, routes, background maintenance and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/config"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/database"
	"github.com/gsvlabs/storefront-backend/internal/handlers"
	"github.com/gsvlabs/storefront-backend/internal/repository"
	"github.com/gsvlabs/storefront-backend/internal/service"
	"github.com/gsvlabs/storefront-backend/internal/utils/ratelimit"
	"github.com/gsvlabs/storefront-backend/migrations"
)

// Server is the assembled application.
type Server struct {
	cfg     *config.AppConfig
	version string

	db         *database.Pool
	jwtService *auth.JWTService
	limiter    *ratelimit.Limiter

	resetService *service.PasswordResetService

	userHandler    *handlers.UserHandler
	resetHandler   *handlers.PasswordResetHandler
	productHandler *handlers.ProductHandler
	contactHandler *handlers.ContactHandler
	systemHandler  *handlers.SystemHandler

	httpServer *http.Server
	shutdown   chan struct{}
}

// New creates an unstarted server.
func New(cfg *config.AppConfig, version string) *Server {
	return &Server{
		cfg:      cfg,
		version:  version,
		shutdown: make(chan struct{}),
	}
}

// Start connects to the database, runs migrations, wires the
// application and serves HTTP until a shutdown signal or a server
// error.
func (s *Server) Start() error {
	if err := s.setupDatabase(); err != nil {
		return err
	}
	s.setupServices()

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("version", s.version).Msg("HTTP server listening")
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	go s.maintenanceLoop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-signals:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		return s.Shutdown()
	}
}

// Shutdown stops the server gracefully: in-flight requests get the
// shutdown timeout to finish, then background work stops and the
// database pool closes.
func (s *Server) Shutdown() error {
	close(s.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		if closeErr := s.httpServer.Close(); closeErr != nil {
			return closeErr
		}
	}

	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database pool")
		}
	}

	log.Info().Msg("Server stopped")
	return nil
}

func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.cfg.Database)
	if err != nil {
		return err
	}
	s.db = db

	ctx, cancel := context.WithTimeout(context.Background(), constants.DBQueryTimeout)
	defer cancel()

	if err := migrations.Run(ctx, db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *Server) setupServices() {
	s.jwtService = auth.NewJWTService(s.cfg.Session.JWTSecret, s.cfg.Session.Duration)

	hashCfg := &auth.PasswordConfig{
		Memory:      s.cfg.Hash.Memory,
		Iterations:  s.cfg.Hash.Iterations,
		Parallelism: s.cfg.Hash.Parallelism,
		SaltLength:  s.cfg.Hash.SaltLength,
		KeyLength:   s.cfg.Hash.KeyLength,
	}

	userRepo := repository.NewUserRepository(s.db)
	resetRepo := repository.NewPasswordResetRepository(s.db)
	productRepo := repository.NewProductRepository(s.db)

	mailService := service.NewMailService(s.cfg.Email, s.cfg.Frontend)
	authService := service.NewAuthService(userRepo, s.jwtService, hashCfg)
	userService := service.NewUserService(userRepo, hashCfg)
	productService := service.NewProductService(productRepo)
	s.resetService = service.NewPasswordResetService(userRepo, resetRepo, mailService, hashCfg)

	if s.cfg.RateLimit.Enabled {
		s.limiter = ratelimit.NewLimiter(s.cfg.RateLimit.Rate, s.cfg.RateLimit.Burst)
	}

	s.userHandler = handlers.NewUserHandler(
		authService, userService, s.jwtService,
		s.cfg.Session.Duration, s.cfg.Session.CookieSecure(),
	)
	s.resetHandler = handlers.NewPasswordResetHandler(s.resetService)
	s.productHandler = handlers.NewProductHandler(productService)
	s.contactHandler = handlers.NewContactHandler(userService, mailService)
	s.systemHandler = handlers.NewSystemHandler(s.db, s.version)
}

// maintenanceLoop sweeps expired password reset tokens hourly until
// shutdown.
func (s *Server) maintenanceLoop() {
	ticker := time.NewTicker(constants.MaintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), constants.DBQueryTimeout)
			if _, err := s.resetService.SweepExpiredTokens(ctx); err != nil {
				log.Error().Err(err).Msg("Maintenance sweep failed")
			}
			cancel()
		}
	}
}
