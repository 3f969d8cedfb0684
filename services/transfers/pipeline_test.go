package transfers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Covers the full clean -> aggregate -> project path over two source
// tables with a footnoted label, a formatted dollar figure and a dash
// placeholder.
func TestPipelineEndToEnd(t *testing.T) {
	source := RawTable{
		Header: []string{"2016-17", "2017-18"},
		Rows: []RawRow{
			{Label: "Equalization 1", Cells: []string{"$100", "-"}},
		},
	}
	tables := []RawTable{source, source}
	titles := []string{
		"Federal Support to Provinces and Territories",
		"Federal Support to Ontario",
	}

	ds := Aggregate(context.Background(), tables, titles)
	require.Equal(t, []string{"Aggregate", "Ontario"}, ds.Jurisdictions())

	rows, err := Project(ds, "2016-17", []string{"Equalization"}, true)
	require.NoError(t, err)
	require.Equal(t, []ProjectionRow{
		{Jurisdiction: "Aggregate", Component: "Equalization", Value: 100},
		{Jurisdiction: "Ontario", Component: "Equalization", Value: 100},
	}, rows)

	// the dash placeholder coerces to an explicit 0
	rows, err = Project(ds, "2017-18", []string{"Equalization"}, true)
	require.NoError(t, err)
	require.Equal(t, []ProjectionRow{
		{Jurisdiction: "Aggregate", Component: "Equalization", Value: 0},
		{Jurisdiction: "Ontario", Component: "Equalization", Value: 0},
	}, rows)
}
