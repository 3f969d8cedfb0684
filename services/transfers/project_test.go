package transfers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixtureDataset(t *testing.T) Dataset {
	t.Helper()

	tables := []RawTable{
		{
			Header: []string{"2020-21"},
			Rows: []RawRow{
				{Label: "Equalization", Cells: []string{"10"}},
				{Label: "Canada Health Transfer", Cells: []string{"20"}},
			},
		},
		{
			Header: []string{"2020-21"},
			Rows: []RawRow{
				{Label: "Equalization", Cells: []string{"30"}},
				{Label: "Canada Health Transfer", Cells: []string{"40"}},
			},
		},
	}
	titles := []string{
		"Federal Support to Provinces and Territories",
		"Federal Support to Ontario",
	}
	return Aggregate(context.Background(), tables, titles)
}

func TestProjectOrdering(t *testing.T) {
	ds := fixtureDataset(t)

	rows, err := Project(ds, "2020-21", []string{"Equalization", "Canada Health Transfer"}, true)
	require.NoError(t, err)

	// grouped by jurisdiction in dataset order, then by component in
	// the requested order
	require.Equal(t, []ProjectionRow{
		{Jurisdiction: "Aggregate", Component: "Equalization", Value: 10},
		{Jurisdiction: "Aggregate", Component: "Canada Health Transfer", Value: 20},
		{Jurisdiction: "Ontario", Component: "Equalization", Value: 30},
		{Jurisdiction: "Ontario", Component: "Canada Health Transfer", Value: 40},
	}, rows)
}

func TestProjectExcludesAggregate(t *testing.T) {
	ds := fixtureDataset(t)

	rows, err := Project(ds, "2020-21", []string{"Equalization"}, false)
	require.NoError(t, err)
	require.Equal(t, []ProjectionRow{
		{Jurisdiction: "Ontario", Component: "Equalization", Value: 30},
	}, rows)
}

func TestProjectEmptyComponentSubset(t *testing.T) {
	ds := fixtureDataset(t)

	rows, err := Project(ds, "2020-21", nil, true)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestProjectInvalidYear(t *testing.T) {
	ds := fixtureDataset(t)

	_, err := Project(ds, "1999-00", []string{"Equalization"}, true)
	var invalidYear *InvalidYearError
	require.ErrorAs(t, err, &invalidYear)
	require.Equal(t, "1999-00", invalidYear.Year)
}

func TestProjectNonCanonicalComponentYieldsNoRows(t *testing.T) {
	ds := fixtureDataset(t)

	rows, err := Project(ds, "2020-21", []string{"Moon Base Subsidy"}, true)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestProjectZeroFilledYear(t *testing.T) {
	ds := fixtureDataset(t)

	// a canonical year absent from the source columns projects as 0
	rows, err := Project(ds, "2025-26", []string{"Equalization"}, true)
	require.NoError(t, err)
	require.Equal(t, []ProjectionRow{
		{Jurisdiction: "Aggregate", Component: "Equalization", Value: 0},
		{Jurisdiction: "Ontario", Component: "Equalization", Value: 0},
	}, rows)
}
