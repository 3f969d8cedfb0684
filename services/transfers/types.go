package transfers

// Components is the canonical set of transfer line items tracked on the
// major-federal-transfers page, in display order.
var Components = []string{
	"Canada Health Transfer",
	"Canada Social Transfer",
	"Equalization",
	"Offshore Offsets",
	"Territorial Formula Financing",
	"Total - Federal Support",
	"Per Capita Allocation (dollars)",
}

// FiscalYears is the canonical fiscal year range, in chronological order.
var FiscalYears = []string{
	"2016-17", "2017-18", "2018-19", "2019-20", "2020-21",
	"2021-22", "2022-23", "2023-24", "2024-25", "2025-26",
}

// MaxJurisdictions caps the number of tables consumed from the page:
// the 13 provinces/territories plus the nationwide total.
const MaxJurisdictions = 14

// AggregateName is the synthetic jurisdiction representing the
// nationwide total.
const AggregateName = "Aggregate"

const titlePrefix = "Federal Support to "

// RawRow is one body row of a source table: the line-item label from the
// first column, and the remaining cells in header order.
type RawRow struct {
	Label string
	Cells []string
}

// RawTable is a source table as delivered by the page scraper. Header
// holds the fiscal-year-like column names as given by the source (the
// label column excluded); rows may be ragged.
type RawTable struct {
	Header []string
	Rows   []RawRow
}

// JurisdictionTable maps canonical component -> fiscal year -> value.
// A cleaned table is schema complete: every canonical component and
// every canonical fiscal year is present, absent source cells are 0.
type JurisdictionTable map[string]map[string]float64

// Dataset is the unified, immutable collection of cleaned jurisdiction
// tables, iterated in source page order.
type Dataset struct {
	names  []string
	tables map[string]JurisdictionTable
}

// Jurisdictions returns jurisdiction names in source page order.
func (d Dataset) Jurisdictions() []string {
	return d.names
}

func (d Dataset) Table(jurisdiction string) (JurisdictionTable, bool) {
	t, ok := d.tables[jurisdiction]
	return t, ok
}

func (d Dataset) Len() int {
	return len(d.names)
}

// ProjectionRow is one record of a query-time flattening of the dataset.
type ProjectionRow struct {
	Jurisdiction string  `json:"jurisdiction"`
	Component    string  `json:"component"`
	Value        float64 `json:"value"`
}
