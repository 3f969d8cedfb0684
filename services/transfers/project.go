package transfers

import (
	"fmt"
	"slices"
)

// InvalidYearError reports a query for a fiscal year outside the
// canonical range. The rendering layer only offers canonical years, but
// the projector still guards against it.
type InvalidYearError struct {
	Year string
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("fiscal year %q is outside the canonical range %s..%s",
		e.Year, FiscalYears[0], FiscalYears[len(FiscalYears)-1])
}

// Project flattens the dataset for one fiscal year into ordered
// (jurisdiction, component, value) rows: jurisdictions in dataset order
// on the outside, components in the requested order on the inside. The
// Aggregate entry is filtered by includeAggregate. An empty component
// subset yields an empty projection; requested components outside the
// canonical set contribute no rows. Pure function of its inputs.
func Project(ds Dataset, year string, components []string, includeAggregate bool) ([]ProjectionRow, error) {
	if !slices.Contains(FiscalYears, year) {
		return nil, &InvalidYearError{Year: year}
	}

	rows := []ProjectionRow{}
	for _, jurisdiction := range ds.Jurisdictions() {
		if !includeAggregate && jurisdiction == AggregateName {
			continue
		}
		table, ok := ds.Table(jurisdiction)
		if !ok {
			continue
		}
		for _, component := range components {
			series, ok := table[component]
			if !ok {
				continue
			}
			rows = append(rows, ProjectionRow{
				Jurisdiction: jurisdiction,
				Component:    component,
				Value:        series[year],
			})
		}
	}
	return rows, nil
}
