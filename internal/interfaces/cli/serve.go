package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partkit/partkit/internal/domain/naming"
	"github.com/partkit/partkit/internal/interfaces/http/handler"
	"github.com/partkit/partkit/internal/interfaces/http/router"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the naming engine over HTTP",
		Long: "Exposes POST /api/v1/names and POST /api/v1/analyses so other\n" +
			"tools can run records through the naming engine without a catalog\n" +
			"API session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.HTTP.Port
			}

			generator := naming.NewGenerator(naming.NewRegistry())
			namingHandler := handler.NewNamingHandler(generator, naming.NewAnalyzer(generator))

			engine, err := router.Setup(a.cfg, a.logger, namingHandler)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:           ":" + port,
				Handler:        engine,
				ReadTimeout:    a.cfg.HTTP.ReadTimeout,
				WriteTimeout:   a.cfg.HTTP.WriteTimeout,
				IdleTimeout:    a.cfg.HTTP.IdleTimeout,
				MaxHeaderBytes: a.cfg.HTTP.MaxHeaderBytes,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server starting", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			case <-cmd.Context().Done():
			}
			a.logger.Info("shutting down server")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}

			a.logger.Info("server exited gracefully")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default: configured http.port)")
	return cmd
}
