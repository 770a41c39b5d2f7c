package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ramandeep-singh77/glassbox/internal/logging"
	"github.com/ramandeep-singh77/glassbox/server"
)

const shutdownGrace = 5 * time.Second

var serveFlags struct {
	addr     string
	capacity int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve trace building and playback over HTTP",
	Long: `Start the HTTP server. Clients POST a scenario name or an inline
world to /api/v1/traces and then page through the stored trace one step
at a time. Prometheus metrics are exposed on /metrics.

Traces live in memory only; restarting the server forgets them.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "addr", ":8080", "Listen address")
	f.IntVar(&serveFlags.capacity, "capacity", 0, "Max traces kept in memory (0 selects the default)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logging.New("server")

	router := gin.Default()
	reg := server.NewRegistry(serveFlags.capacity)
	server.RegisterRoutes(router, server.NewHandlers(reg))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	srv := &http.Server{Addr: serveFlags.addr, Handler: router}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Info("listening", "addr", serveFlags.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
