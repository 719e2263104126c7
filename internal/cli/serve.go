package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluesmoth12/Blossom/internal/analysis"
	"github.com/bluesmoth12/Blossom/internal/api"
	"github.com/bluesmoth12/Blossom/internal/logger"
)

type ServeCmd struct {
	Addr string `help:"Listen address, overriding the config file." placeholder:"HOST:PORT"`
}

// Run starts the HTTP server and blocks until an interrupt.
func (c *ServeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer ctx.Store.Close()

	loc, err := ctx.Config.Location()
	if err != nil {
		return err
	}

	sessions, err := api.NewSessionManager(ctx.Config.SessionSecret, ctx.Config.SessionTTL())
	if err != nil {
		return err
	}

	handler := api.NewHandler(ctx.Store, sessions, analysis.NewMockAnalyzer(), loc)

	addr := ctx.Config.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "timezone", ctx.Config.Timezone)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-done:
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
