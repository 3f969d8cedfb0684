package commands

import (
	"os"

	"fedtransfers-backend/lib/util/serviceutil"
	"fedtransfers-backend/services/transfers"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var queryYear *string
var queryComponents *[]string
var queryNoAggregate *bool

func init() {
	queryYear = queryCmd.Flags().String("year", transfers.FiscalYears[0], "The fiscal year to project.")
	queryComponents = queryCmd.Flags().StringSlice("components", transfers.Components, "The transfer components to include.")
	queryNoAggregate = queryCmd.Flags().Bool("no-aggregate", false, "Exclude the nationwide Aggregate entry.")
	rootCmd.AddCommand(queryCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var queryCmd = &cobra.Command{
	Use:   "query [--year <fiscal year>] [--components <a,b,...>] [--no-aggregate]",
	Short: "Projects the dataset for one fiscal year and renders it as a table.",
	Run: func(cmd *cobra.Command, args []string) {
		dataset, err := buildDataset(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to build dataset", err)
		}

		rows, err := transfers.Project(dataset, *queryYear, *queryComponents, !*queryNoAggregate)
		if err != nil {
			serviceutil.Fatal("failed to project dataset", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Jurisdiction", "Component", "Millions of Dollars"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Jurisdiction, row.Component, row.Value})
		}
		t.Render()
	},
}
