package transfers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fedtransfers-backend/lib/textutil"
)

// MalformedTableError reports a raw table that cannot be interpreted as
// rows and columns at all. It is scoped to a single jurisdiction: the
// aggregator logs it and omits that jurisdiction, the pipeline
// continues.
type MalformedTableError struct {
	Reason string
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("malformed table: %s", e.Reason)
}

// CleanTable normalizes one raw table into a schema-complete
// JurisdictionTable: labels normalized, cells coerced, rows restricted
// to the canonical components and columns to the canonical fiscal
// years, with absent cells zero-filled. Absence in the source is
// indistinguishable from a reported zero.
func CleanTable(ctx context.Context, raw RawTable) (JurisdictionTable, error) {
	if len(raw.Header) == 0 {
		return nil, &MalformedTableError{Reason: "no header row"}
	}
	if len(raw.Rows) == 0 {
		return nil, &MalformedTableError{Reason: "no data rows"}
	}

	warnNearMissColumns(ctx, raw.Header)

	// working table keyed by folded normalized label, columned by the
	// source's own header names; only successfully coerced cells are
	// kept, everything else falls to the zero-fill below
	working := make(map[string]map[string]float64, len(raw.Rows))
	for _, row := range raw.Rows {
		label := textutil.Fold(NormalizeComponent(row.Label))
		if label == "" {
			continue
		}
		cells := make(map[string]float64, len(row.Cells))
		for i, cell := range row.Cells {
			if i >= len(raw.Header) {
				break
			}
			value, ok := CoerceNumber(cell)
			if !ok {
				continue
			}
			cells[raw.Header[i]] = value
		}
		working[label] = cells
	}

	out := make(JurisdictionTable, len(Components))
	for _, component := range Components {
		row := working[textutil.Fold(component)]
		series := make(map[string]float64, len(FiscalYears))
		for _, year := range FiscalYears {
			series[year] = row[year]
		}
		out[component] = series
	}
	return out, nil
}

// warnNearMissColumns surfaces source columns that differ from a
// canonical fiscal year label only by whitespace. The cleaner does not
// guess at such variants, it zero-fills the canonical year as missing,
// so the discrepancy should at least be visible in the logs.
func warnNearMissColumns(ctx context.Context, header []string) {
	for _, h := range header {
		collapsed := strings.Join(strings.Fields(h), " ")
		if collapsed == h {
			continue
		}
		for _, year := range FiscalYears {
			if collapsed == year {
				slog.WarnContext(
					ctx, "source year column differs from canonical label only by whitespace, treating as missing",
					"column", h,
					"fiscal_year", year,
				)
			}
		}
	}
}
