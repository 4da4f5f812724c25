// Package serve implements the serve command
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fjacquet/bank-statement/cmd/root"
	"fjacquet/bank-statement/internal/api"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var address string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve statement detection and parsing over HTTP",
	Long: `Serve statement detection and parsing over HTTP.

Routes:
  GET  /api/health
  POST /api/detect?filename=
  POST /api/parse?filename=&format=&validate=
  POST /api/info?filename=&format=

The statement is sent as the request body.

Example:
  bank-statement serve --address :8080`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&address, "address", "", "Listen address (defaults to api.address)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	cfg := c.GetConfig()

	addr := address
	if addr == "" {
		addr = cfg.API.Address
	}

	server := api.NewServer(c.GetDispatcher(), c.GetLogger(), api.Options{
		BodyLimit: cfg.API.BodyLimitMB * 1024 * 1024,
		Validate:  cfg.Parse.Validate,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		c.GetLogger().Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
