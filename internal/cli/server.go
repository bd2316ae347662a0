package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tohsaka888/societies-server/internal/api"
	"github.com/tohsaka888/societies-server/internal/api/ws"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API and WebSocket servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		ctx := context.Background()
		if cfg.JWTSecretKey == "" {
			services.Log.Warn(ctx, "jwt_secret_key is empty; tokens will not survive a restart")
		}

		server := api.NewServer(cfg, services.API, services.Log)
		echo := ws.NewServer(cfg.WSAddr(), services.Log)

		serverErr := make(chan error, 2)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- fmt.Errorf("api server: %w", err)
			}
		}()
		go func() {
			if err := echo.Start(); err != nil {
				serverErr <- fmt.Errorf("websocket server: %w", err)
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		var runErr error
		select {
		case runErr = <-serverErr:
			services.Log.Error(ctx, "server failed", "error", runErr)
		case sig := <-sigChan:
			services.Log.Info(ctx, "shutting down", "signal", sig.String())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("api server shutdown: %w", err))
		}
		if err := echo.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("websocket server shutdown: %w", err))
		}

		services.Log.Info(ctx, "servers stopped")
		return runErr
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
