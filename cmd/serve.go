package cmd

import (
	"fmt"
	"net"

	"github.com/paakwasi317/conference-tracker/internal/adapters/httpapi"
	"github.com/paakwasi317/conference-tracker/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload page and scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := app.cfg.Server.Listen
			if cmd.Flags().Changed("listen") {
				addr = listen
			}

			logger, err := logging.New(cmd.ErrOrStderr(), "http", logging.Options{
				Level:  app.cfg.Log.Level,
				Format: app.cfg.Log.Format,
			})
			if err != nil {
				return fmt.Errorf("wire logger: %w", err)
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics, err := httpapi.NewMetrics(reg)
			if err != nil {
				return fmt.Errorf("register metrics: %w", err)
			}

			handler := httpapi.NewHandler(app.newService(app.scheduleOptions()), logger, httpapi.Options{
				MaxUploadBytes: app.cfg.Server.MaxUploadBytes,
				Metrics:        metrics,
				Gatherer:       reg,
			})

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s/tracker\n", listener.Addr())
			return httpapi.Serve(cmd.Context(), listener, handler.Routes(), logger)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default: server.listen from config)")

	return cmd
}
