package commands

import (
	"log/slog"
	"time"

	"fedtransfers-backend/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetches the transfers page and reports what the cleaned dataset contains.",
	Run: func(cmd *cobra.Command, args []string) {
		t1 := time.Now()
		dataset, err := buildDataset(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to build dataset", err)
		}
		t2 := time.Now()

		slog.Info(
			"dataset built",
			"jurisdictions", dataset.Len(),
			"seconds", t2.Sub(t1).Seconds(),
		)
		for _, name := range dataset.Jurisdictions() {
			slog.Info("jurisdiction", "name", name)
		}
	},
}
