package commands

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fedtransfers-backend/lib/telemetry"
	"fedtransfers-backend/lib/util/serviceutil"
	"fedtransfers-backend/services/transfers/server"

	"github.com/spf13/cobra"
)

var servePort *int
var serveRefresh *time.Duration

func init() {
	servePort = serveCmd.Flags().Int("port", 8300, "The port to serve projection queries on.")
	serveRefresh = serveCmd.Flags().Duration("refresh", 0, "Re-scrape interval, 0 disables refresh.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--port <port>] [--refresh <interval>]",
	Short: "Builds the dataset once and serves read-only projection queries.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := serviceutil.SignalContext()
		telemetry.InstrumentPerfStats(ctx)

		dataset, err := buildDataset(ctx)
		if err != nil {
			serviceutil.Fatal("failed to build dataset", err)
		}

		srv := server.New(dataset)
		if *serveRefresh > 0 {
			go refreshLoop(ctx, srv, *serveRefresh)
		}

		mux := http.NewServeMux()
		srv.Register(mux)
		serviceutil.StartHttpServer(*servePort, mux)
	},
}

// refreshLoop periodically rebuilds the dataset and swaps it in whole.
// A failed rebuild keeps the previous dataset.
func refreshLoop(ctx context.Context, srv *server.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			dataset, err := buildDataset(ctx)
			if err != nil {
				slog.WarnContext(ctx, "refresh failed, keeping previous dataset", "err", err)
				continue
			}
			srv.Swap(dataset)
			slog.InfoContext(ctx, "dataset refreshed", "jurisdictions", dataset.Len())
		case <-ctx.Done():
			return
		}
	}
}
