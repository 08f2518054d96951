// ABOUTME: HTTP API command
// ABOUTME: Serves the JSON API until interrupted

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	serveAddr   string
	corsOrigins []string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", nil, "allowed CORS origins (default any)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Addr
	}

	srv := server.NewServer(svc, server.Options{
		Addr:        addr,
		DefaultUser: currentUser(),
		CorsOrigins: corsOrigins,
		Logger:      logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	logger.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}
