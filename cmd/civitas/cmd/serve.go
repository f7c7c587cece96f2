package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "civitas/docs"

	"civitas/config"
	"civitas/internal/adapters/auth"
	"civitas/internal/adapters/email"
	delivery "civitas/internal/delivery/http"
	"civitas/internal/delivery/http/controllers"
	"civitas/internal/delivery/http/middleware"
	"civitas/internal/domain"
	"civitas/internal/repository/postgres"
	"civitas/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Civitas HTTP server",
	Long: `Start the Civitas HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (and .env outside production)
- Connect to Postgres and verify the connection
- Serve the REST API, /healthz, /metrics and /swagger/
- Handle graceful shutdown on SIGINT/SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	// The root command serves too, so it takes the same flag.
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVar(&serverPort, "port", "", "server port (default: $PORT or 8080)")
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	logger.Info("database connected")

	handler, err := newHandler(cfg, logger, db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newHandler wires repositories, services and controllers into the HTTP handler chain.
func newHandler(cfg *config.Config, logger *slog.Logger, db *sql.DB) (http.Handler, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)

	eventService := services.NewEventService(eventRepo, cfg.RequestTimeout)
	participationService := services.NewParticipationService(
		eventRepo,
		participationRepo,
		services.NewEmailService(mailer, renderer, logger),
		logger,
		cfg.RequestTimeout,
	)

	metrics := middleware.NewMetrics()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "civitas"),
	)

	router := delivery.NewRouter(delivery.Controllers{
		Events:         controllers.NewEventController(logger, eventService),
		Participations: controllers.NewParticipationController(logger, participationService),
		Health:         controllers.NewHealthController(logger, db, 2*time.Second),
	}, newVerifier(cfg), metrics.Handler())

	return middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, metrics.Middleware(router))), nil
}

func jwtConfig(cfg *config.Config) auth.JWTConfig {
	return auth.JWTConfig{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.JWTIssuer,
		Audience: cfg.Auth.JWTAudience,
	}
}

func newVerifier(cfg *config.Config) domain.TokenVerifier {
	return auth.NewJWTVerifier(jwtConfig(cfg))
}
