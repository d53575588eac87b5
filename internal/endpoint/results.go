package endpoint

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResultRow is one rider in an edition result table. Pos stays textual so
// non-finishers (DNF, DNS, OTL) keep their marker.
type ResultRow struct {
	Pos    string `json:"pos"`
	Rider  string `json:"rider"`
	Nation string `json:"nation,omitempty"`
	Team   string `json:"team,omitempty"`
	Time   string `json:"time,omitempty"`
}

// EditionResults is the result table of one race edition (race.php with
// y=<year>, optionally l=<classification> and e=<stage>).
type EditionResults struct {
	Title string      `json:"title"`
	Rows  []ResultRow `json:"rows"`
}

// ParseEditionResults parses an edition results page. The first table on
// the page carries the results; rows without a rider cell are skipped.
func ParseEditionResults(html string) (*EditionResults, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	res := &EditionResults{
		Title: strings.TrimSpace(doc.Find("h1").First().Text()),
		Rows:  make([]ResultRow, 0),
	}

	doc.Find("table").First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		pos := cellText(tr, 0)
		rider := cellText(tr, 1)
		if pos == "" || rider == "" {
			return
		}
		res.Rows = append(res.Rows, ResultRow{
			Pos:    pos,
			Rider:  rider,
			Nation: nation(tr),
			Team:   cellText(tr, 2),
			Time:   cellText(tr, 3),
		})
	})

	return res, nil
}
