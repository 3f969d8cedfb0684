package transfers

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/transfers")

// JurisdictionName derives a jurisdiction name from a page section
// title. The all-jurisdictions table is titled with "Provinces and
// Territories" and becomes the synthetic Aggregate entry.
func JurisdictionName(title string) string {
	if strings.Contains(title, "Provinces and Territories") {
		return AggregateName
	}
	return strings.TrimSpace(strings.TrimPrefix(title, titlePrefix))
}

// Aggregate cleans each raw table and collects the successes into a
// Dataset keyed by the jurisdiction name derived from the parallel
// section title list, preserving input order. A table that fails to
// clean is logged and omitted entirely: its jurisdiction is absent from
// the dataset, which downstream queries can distinguish from a
// present-but-zero jurisdiction. Both sequences are capped at
// MaxJurisdictions.
func Aggregate(ctx context.Context, tables []RawTable, titles []string) Dataset {
	ctx, span := tracer.Start(ctx, "Aggregate")
	defer span.End()

	n := min(len(tables), len(titles), MaxJurisdictions)

	out := Dataset{
		names:  make([]string, 0, n),
		tables: make(map[string]JurisdictionTable, n),
	}
	for i := 0; i < n; i++ {
		name := JurisdictionName(titles[i])
		cleaned, err := CleanTable(ctx, tables[i])
		if err != nil {
			slog.WarnContext(
				ctx, "skipping jurisdiction with unusable table",
				"index", i,
				"jurisdiction", name,
				"err", err,
			)
			continue
		}
		out.names = append(out.names, name)
		out.tables[name] = cleaned
	}

	slog.InfoContext(
		ctx, "aggregated transfer tables",
		"jurisdictions", out.Len(),
		"skipped", n-out.Len(),
	)
	return out
}
