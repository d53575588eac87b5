package endpoint

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is one HTML table lifted into headers and text rows.
type Table struct {
	Caption string     `json:"caption,omitempty"`
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows"`
}

// Page is the generic parse of a race.php tab: the page title plus every
// data table found on it.
type Page struct {
	Title  string  `json:"title"`
	Tables []Table `json:"tables"`
}

// ParsePage extracts the title and all tables from a race page. Malformed
// HTML never fails; at worst the page comes back empty.
func ParsePage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	page := &Page{
		Title:  strings.TrimSpace(doc.Find("h1").First().Text()),
		Tables: make([]Table, 0),
	}

	doc.Find("table").Each(func(i int, tbl *goquery.Selection) {
		page.Tables = append(page.Tables, parseTable(tbl))
	})

	return page, nil
}

// parseTable lifts a single table selection into headers and rows.
func parseTable(tbl *goquery.Selection) Table {
	t := Table{
		Caption: strings.TrimSpace(tbl.Find("caption").First().Text()),
		Rows:    make([][]string, 0),
	}

	// Headers from thead, falling back to any th-only first row
	tbl.Find("thead tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
		t.Headers = append(t.Headers, strings.TrimSpace(th.Text()))
	})
	if len(t.Headers) == 0 {
		tbl.Find("tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
			t.Headers = append(t.Headers, strings.TrimSpace(th.Text()))
		})
	}

	tbl.Find("tr").Each(func(i int, tr *goquery.Selection) {
		row := make([]string, 0)
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			row = append(row, strings.TrimSpace(td.Text()))
		})
		if len(row) > 0 {
			t.Rows = append(t.Rows, row)
		}
	})

	return t
}

// nation pulls the country name out of the flag image a cell carries, if
// any. The site marks nationality with <img ... title="Italy">.
func nation(cell *goquery.Selection) string {
	title, _ := cell.Find("img").First().Attr("title")
	return strings.TrimSpace(title)
}

// cellText returns the trimmed text of the n-th td in a row, or "" when
// the row is shorter.
func cellText(tr *goquery.Selection, n int) string {
	return strings.TrimSpace(tr.Find("td").Eq(n).Text())
}
