package transfers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanTableSchemaComplete(t *testing.T) {
	raw := RawTable{
		Header: []string{"2016-17", "2017-18"},
		Rows: []RawRow{
			{Label: "Equalization 1", Cells: []string{"$100", "-"}},
			{Label: "Some Other Line Item", Cells: []string{"5", "6"}},
		},
	}

	cleaned, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)

	for _, component := range Components {
		series, ok := cleaned[component]
		require.True(t, ok, "component %q missing", component)
		for _, year := range FiscalYears {
			_, ok := series[year]
			require.True(t, ok, "year %q missing for %q", year, component)
		}
	}

	require.Equal(t, float64(100), cleaned["Equalization"]["2016-17"])
	require.Equal(t, float64(0), cleaned["Equalization"]["2017-18"])
	// a year absent from the source is zero-filled
	require.Equal(t, float64(0), cleaned["Equalization"]["2025-26"])
	// a component absent from the source is zero-filled
	require.Equal(t, float64(0), cleaned["Canada Health Transfer"]["2016-17"])
	// rows outside the canonical set are dropped
	_, ok := cleaned["Some Other Line Item"]
	require.False(t, ok)
}

func TestCleanTableCaseInsensitiveLabels(t *testing.T) {
	raw := RawTable{
		Header: []string{"2016-17"},
		Rows: []RawRow{
			{Label: "equalization 2", Cells: []string{"7"}},
			{Label: "TOTAL - FEDERAL SUPPORT", Cells: []string{"9"}},
		},
	}

	cleaned, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, float64(7), cleaned["Equalization"]["2016-17"])
	require.Equal(t, float64(9), cleaned["Total - Federal Support"]["2016-17"])
}

func TestCleanTableUnparsableCellsFillZero(t *testing.T) {
	raw := RawTable{
		Header: []string{"2016-17", "2017-18", "2018-19"},
		Rows: []RawRow{
			{Label: "Equalization", Cells: []string{"oops", "", "$3"}},
		},
	}

	cleaned, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, float64(0), cleaned["Equalization"]["2016-17"])
	require.Equal(t, float64(0), cleaned["Equalization"]["2017-18"])
	require.Equal(t, float64(3), cleaned["Equalization"]["2018-19"])
}

func TestCleanTableRaggedRows(t *testing.T) {
	raw := RawTable{
		Header: []string{"2016-17", "2017-18"},
		Rows: []RawRow{
			// short row: trailing years zero-fill
			{Label: "Equalization", Cells: []string{"1"}},
			// long row: cells beyond the header are dropped
			{Label: "Canada Health Transfer", Cells: []string{"2", "3", "4"}},
		},
	}

	cleaned, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, float64(1), cleaned["Equalization"]["2016-17"])
	require.Equal(t, float64(0), cleaned["Equalization"]["2017-18"])
	require.Equal(t, float64(3), cleaned["Canada Health Transfer"]["2017-18"])
}

func TestCleanTableWhitespaceYearVariantNotMatched(t *testing.T) {
	// a source column whose label differs from the canonical year only
	// by whitespace is treated as entirely missing, not silently fixed
	raw := RawTable{
		Header: []string{" 2016-17 ", "2017-18"},
		Rows: []RawRow{
			{Label: "Equalization", Cells: []string{"100", "200"}},
		},
	}

	cleaned, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, float64(0), cleaned["Equalization"]["2016-17"])
	require.Equal(t, float64(200), cleaned["Equalization"]["2017-18"])
}

func TestCleanTableMalformed(t *testing.T) {
	table := []struct {
		name string
		raw  RawTable
	}{
		{name: "no header", raw: RawTable{Rows: []RawRow{{Label: "Equalization", Cells: []string{"1"}}}}},
		{name: "no rows", raw: RawTable{Header: []string{"2016-17"}}},
		{name: "empty", raw: RawTable{}},
	}

	for _, row := range table {
		_, err := CleanTable(context.Background(), row.raw)
		var malformed *MalformedTableError
		require.ErrorAs(t, err, &malformed, row.name)
	}
}

func TestCleanTableIdempotent(t *testing.T) {
	raw := RawTable{
		Header: []string{"2016-17", "2017-18"},
		Rows: []RawRow{
			{Label: "Equalization 1", Cells: []string{"$1,500", "-"}},
			{Label: "Canada Social Transfer", Cells: []string{"750", "800"}},
		},
	}

	first, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)
	second, err := CleanTable(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
