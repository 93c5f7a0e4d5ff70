package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/editor"
	"github.com/Zachkp/portfolio/internal/visits"
	"github.com/Zachkp/portfolio/internal/web"
)

const cleanupInterval = 24 * time.Hour

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio and the admin editor (default)",
	RunE:  runServe,
}

//nolint:funlen // bootstrap code is inherently verbose
func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	a, err := bootstrap(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()
	cfg, logger := a.cfg, a.logger

	gin.SetMode(cfg.Server.GinMode)

	store := a.contentStore(ctx)
	gate := a.gate()
	if usingDefault, err := gate.UsingDefaultPassword(ctx); err == nil && usingDefault {
		logger.Warn("using the default admin password, change it from /admin")
	}

	hasher, err := visits.NewHasher()
	if err != nil {
		return err
	}
	recorder, tracker := visitRecorder(a, hasher)

	engine, err := web.New(web.Deps{
		Store:        store,
		Gate:         gate,
		Workspaces:   editor.NewWorkspaces(store),
		Contact:      contact.NewService(mailer(cfg.SMTP, logger), recipient(cfg.SMTP, store), logger),
		Visits:       recorder,
		Hasher:       hasher,
		Logger:       logger,
		CookieSecure: cfg.Server.CookieSecure,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if tracker != nil {
		g.Go(func() error {
			sweepVisits(gctx, tracker, cfg.Visits.Retention, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// visitRecorder returns a sqlite-backed tracker, or a no-op recorder and a nil
// tracker when tracking is off or storage is not sqlite.
func visitRecorder(a *app, hasher *visits.Hasher) (visits.Recorder, *visits.Tracker) {
	if !a.cfg.Visits.Enabled {
		a.logger.Info("visitor tracking disabled")
		return visits.NopRecorder{}, nil
	}
	if a.db == nil {
		a.logger.Info("visitor tracking needs the sqlite driver, disabled", "driver", a.cfg.Storage.Driver)
		return visits.NopRecorder{}, nil
	}

	a.logger.Info("privacy: visitor tracking enabled with hashed IP addresses", "retention", a.cfg.Visits.Retention)
	tracker := visits.NewTracker(a.db, hasher, a.logger)
	return tracker, tracker
}

// sweepVisits deletes expired visits now and then once a day until ctx ends.
func sweepVisits(ctx context.Context, tracker *visits.Tracker, retention time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		if _, err := tracker.Cleanup(ctx, retention); err != nil && ctx.Err() == nil {
			logger.Error("visitor cleanup failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func mailer(cfg config.SMTPConfig, logger *slog.Logger) contact.Mailer {
	smtpCfg := contact.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Password,
	}
	if !smtpCfg.Configured() {
		logger.Warn("SMTP credentials not configured, contact messages will only be logged")
		return contact.LogMailer{Logger: logger}
	}
	return contact.NewSMTPMailer(smtpCfg)
}

// recipient prefers CONTACT_TO and falls back to the contact section's email.
func recipient(cfg config.SMTPConfig, store *content.Store) func() string {
	return func() string {
		if to := strings.TrimSpace(cfg.To); to != "" {
			return to
		}
		return store.Data().Contact.Email
	}
}
