package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tekoa-labs/riskcore/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the risk engine over HTTP",
	Long: `Expose the engine as a JSON API for bot schedulers:

  POST /v1/size               size and gate one trade
  POST /v1/portfolio/metrics  aggregate an open-position snapshot
  GET  /metrics               Prometheus metrics
  GET  /healthz               liveness`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(logger, j),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
