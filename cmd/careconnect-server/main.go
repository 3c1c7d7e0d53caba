package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/careconnect/careconnect/internal/config"
	"github.com/careconnect/careconnect/internal/domain/account"
	"github.com/careconnect/careconnect/internal/domain/appointment"
	"github.com/careconnect/careconnect/internal/domain/consultation"
	"github.com/careconnect/careconnect/internal/domain/doctor"
	"github.com/careconnect/careconnect/internal/domain/medicalrecord"
	"github.com/careconnect/careconnect/internal/domain/message"
	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/db"
	"github.com/careconnect/careconnect/internal/platform/middleware"
	"github.com/careconnect/careconnect/internal/platform/notification"
	"github.com/careconnect/careconnect/internal/platform/web"
)

const serviceName = "Healthcare Consultation API"

func main() {
	rootCmd := &cobra.Command{
		Use:   "careconnect-server",
		Short: "Healthcare consultation API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	})

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := newRouter(cfg, pool, logger)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}

// newRouter builds the Echo instance with all middleware and routes wired.
// Split out from runServer so handlers can be exercised in tests without a
// listening socket.
func newRouter(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = web.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health and service info
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message":       serviceName,
			"version":       "1.0.0",
			"documentation": "/api",
			"health":        "/health",
		})
	})

	// API group with rate limiting
	api := e.Group("/api")
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Auth
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	authenticate := auth.Authenticate(tokens)

	// Email
	var sender notification.EmailSender
	if cfg.SMTPHost != "" {
		sender = &notification.SMTPSender{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.EmailFrom,
		}
	} else {
		sender = &notification.LogSender{Logger: logger}
	}
	mailer := notification.NewMailer(sender)

	// Repositories
	userRepo := user.NewRepo(pool)
	apptRepo := appointment.NewRepo(pool)
	consultRepo := consultation.NewRepo(pool)
	recordRepo := medicalrecord.NewRepo(pool)
	msgRepo := message.NewRepo(pool)

	// Account routes are public
	accountSvc := account.NewService(userRepo, tokens)
	account.NewHandler(accountSvc).RegisterRoutes(api)

	// Everything else takes the auth gate per route. A sub-group would
	// register its own catch-all wrapped in the gate, turning unmatched
	// /api paths into 401s instead of the 404 fallback.
	userSvc := user.NewService(userRepo)
	user.NewHandler(userSvc).RegisterRoutes(api, authenticate)

	doctorSvc := doctor.NewService(userRepo)
	doctor.NewHandler(doctorSvc).RegisterRoutes(api, authenticate)

	apptSvc := appointment.NewService(apptRepo, userRepo, mailer, logger)
	appointment.NewHandler(apptSvc).RegisterRoutes(api, authenticate)

	consultSvc := consultation.NewService(consultRepo, apptRepo, logger)
	consultation.NewHandler(consultSvc).RegisterRoutes(api, authenticate)

	recordSvc := medicalrecord.NewService(recordRepo, userRepo)
	medicalrecord.NewHandler(recordSvc).RegisterRoutes(api, authenticate)

	msgSvc := message.NewService(msgRepo, userRepo)
	message.NewHandler(msgSvc).RegisterRoutes(api, authenticate)

	return e
}
