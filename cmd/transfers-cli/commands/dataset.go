package commands

import (
	"context"
	"os"

	"fedtransfers-backend/lib/configutil"
	"fedtransfers-backend/lib/scrapers/canadafinance"
	"fedtransfers-backend/services/transfers"
)

type Config struct {
	PageUrl string `json:"page_url"`
}

func readConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	return cfg, err
}

func buildDataset(ctx context.Context) (transfers.Dataset, error) {
	cfg, err := readConfig()
	if err != nil {
		return transfers.Dataset{}, err
	}

	client := canadafinance.NewClient(canadafinance.ClientOptions{
		PageUrl: cfg.PageUrl,
	})
	tables, titles, err := client.FetchTables(ctx)
	if err != nil {
		return transfers.Dataset{}, err
	}

	return transfers.Aggregate(ctx, tables, titles), nil
}
