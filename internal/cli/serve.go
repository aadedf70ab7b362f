package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/internal/config"
	"github.com/kyriakid1s/portfolio/internal/metrics"
	httpAdapter "github.com/kyriakid1s/portfolio/pkg/adapters/http"
	"github.com/kyriakid1s/portfolio/pkg/adapters/memory"
	redisAdapter "github.com/kyriakid1s/portfolio/pkg/adapters/redis"
	"github.com/kyriakid1s/portfolio/pkg/adapters/smtp"
	"github.com/kyriakid1s/portfolio/pkg/middleware"
	"github.com/kyriakid1s/portfolio/pkg/ports"
)

// mailTimeout bounds a single SMTP relay.
const mailTimeout = 30 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	Options
	Port       string
	RedisURL   string
	MailDryRun bool // Keep contact messages in memory instead of relaying them
	Watch      bool
}

// Serve runs the site server until SIGINT or SIGTERM.
func Serve(opts ServeOptions) error {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	if opts.Port != "" {
		cfg.Server.Addr = ":" + opts.Port
	}
	if opts.RedisURL != "" {
		cfg.RateLimit.RedisURL = opts.RedisURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := createLogger(opts.Debug, true)
	m := metrics.New()
	site, err := newSite(cfg, logger, opts.Debug, portfolio.WithHooks(m.Hooks()))
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	limiter, closeLimiter, err := newRateLimiter(sigCtx, cfg.RateLimit, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	mailer, err := newMailer(cfg.SMTP, opts.MailDryRun, logger)
	if err != nil {
		return err
	}
	if mailer != nil {
		mailer = middleware.Chain(mailer, middleware.WithLogging(logger), middleware.WithTimeout(mailTimeout))
	}

	handler, err := httpAdapter.NewHandler(site,
		httpAdapter.WithSiteInfo(cfg.Site),
		httpAdapter.WithMailer(mailer),
		httpAdapter.WithRateLimiter(limiter),
		httpAdapter.WithMetrics(m),
		httpAdapter.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if opts.Watch {
		go watchContent(sigCtx, site, logger)
	}

	logger.Info("Serving content", "dir", cfg.ContentDir)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpAdapter.ListenAndServe(sigCtx, srv, logger)
}

// newRateLimiter prefers Redis so limits survive restarts and span replicas.
func newRateLimiter(ctx context.Context, cfg config.RateLimit, logger *slog.Logger) (ports.RateLimiter, func(), error) {
	if cfg.RedisURL == "" {
		logger.Info("Rate limiter: memory", "limit", cfg.Limit, "window", cfg.Window.Std())
		return memory.NewRateLimiter(cfg.Limit, cfg.Window.Std()), func() {}, nil
	}

	limiter, err := redisAdapter.New(cfg.RedisURL,
		redisAdapter.WithPrefix(cfg.Prefix),
		redisAdapter.WithLimit(cfg.Limit),
		redisAdapter.WithWindow(cfg.Window.Std()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := limiter.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable, contact form will not be throttled until it recovers", "error", err)
	} else {
		logger.Info("Rate limiter: redis", "limit", cfg.Limit, "window", cfg.Window.Std())
	}
	return limiter, func() { _ = limiter.Close() }, nil
}

// newMailer returns a nil Mailer when no relay is configured.
func newMailer(cfg config.SMTP, dryRun bool, logger *slog.Logger) (ports.Mailer, error) {
	if dryRun {
		logger.Info("Contact relay: dry run, messages stay in memory")
		return memory.NewOutbox(), nil
	}
	if !cfg.Enabled() {
		logger.Warn("Contact relay disabled: no SMTP host configured")
		return nil, nil
	}

	mailer, err := smtp.New(smtp.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		To:       cfg.To,
		TLS:      cfg.TLS,
	}, smtp.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Info("Contact relay: smtp", "host", cfg.Host, "port", cfg.Port)
	return mailer, nil
}
