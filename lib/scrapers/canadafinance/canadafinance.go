package canadafinance

import (
	"bytes"
	"context"
	"fmt"

	"fedtransfers-backend/lib/htmlutil"
	"fedtransfers-backend/lib/restyutil"
	"fedtransfers-backend/services/transfers"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/canadafinance")

// DefaultPageUrl is the Department of Finance page listing one transfer
// table per province/territory plus the nationwide total.
const DefaultPageUrl = "https://www.canada.ca/en/department-finance/programs/federal-transfers/major-federal-transfers.html"

// SectionTitles is the known order of table sections on the page, used
// as a fallback when a table carries no usable caption or heading.
var SectionTitles = []string{
	"Federal Support to Provinces and Territories",
	"Federal Support to Newfoundland and Labrador",
	"Federal Support to Prince Edward Island",
	"Federal Support to Nova Scotia",
	"Federal Support to New Brunswick",
	"Federal Support to Quebec",
	"Federal Support to Ontario",
	"Federal Support to Manitoba",
	"Federal Support to Saskatchewan",
	"Federal Support to Alberta",
	"Federal Support to British Columbia",
	"Federal Support to Yukon",
	"Federal Support to Northwest Territories",
	"Federal Support to Nunavut",
}

type ClientOptions struct {
	// PageUrl overrides DefaultPageUrl, mainly for tests.
	PageUrl string
}

type Client struct {
	http    *resty.Client
	pageUrl string
}

func NewClient(options ClientOptions) Client {
	if options.PageUrl == "" {
		options.PageUrl = DefaultPageUrl
	}
	http := resty.New()
	restyutil.InstrumentClient(http, tracer)
	return Client{
		http:    http,
		pageUrl: options.PageUrl,
	}
}

// FetchTables downloads the transfers page and returns its tables in
// page order together with a parallel list of section titles.
func (c Client) FetchTables(ctx context.Context) ([]transfers.RawTable, []string, error) {
	ctx, span := tracer.Start(ctx, "FetchTables")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.pageUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch: %w", err)
	}
	if res.StatusCode() != 200 {
		return nil, nil, fmt.Errorf("fetch: unexpected status %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}
	return ParseDocument(doc)
}

// ParseDocument walks every table element in the document into a
// RawTable. Titles come from the table caption when present, then the
// nearest preceding h2 heading, then the fixed section title list.
func ParseDocument(doc *goquery.Document) ([]transfers.RawTable, []string, error) {
	var tables []transfers.RawTable
	var titles []string

	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		tables = append(tables, parseTable(sel))
		titles = append(titles, tableTitle(sel, i))
	})

	if len(tables) == 0 {
		return nil, nil, fmt.Errorf("no tables found on the page")
	}
	return tables, titles, nil
}

func parseTable(sel *goquery.Selection) transfers.RawTable {
	var table transfers.RawTable
	sawHeader := false

	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var texts []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, htmlutil.Text(cell))
		})
		if len(texts) == 0 {
			return
		}
		if !sawHeader {
			// first column names the line items, the rest are
			// fiscal-year columns
			table.Header = texts[1:]
			sawHeader = true
			return
		}
		table.Rows = append(table.Rows, transfers.RawRow{
			Label: texts[0],
			Cells: texts[1:],
		})
	})

	return table
}

func tableTitle(sel *goquery.Selection, index int) string {
	caption := htmlutil.Text(sel.Find("caption"))
	if caption != "" {
		return caption
	}
	heading := htmlutil.Text(sel.PrevAllFiltered("h2").First())
	if heading != "" {
		return heading
	}
	if index < len(SectionTitles) {
		return SectionTitles[index]
	}
	return ""
}
