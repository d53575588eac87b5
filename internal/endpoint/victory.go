package endpoint

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// VictoryRow is one rider in a race's all-time victory table.
type VictoryRow struct {
	Rank   int    `json:"rank"`
	Rider  string `json:"rider"`
	Nation string `json:"nation,omitempty"`
	Wins   int    `json:"wins"`
}

// VictoryTable is a race's all-time victory table (race.php k=W).
type VictoryTable struct {
	Rows []VictoryRow `json:"rows"`
}

// ParseVictoryTable parses the victory-table tab. Rows that don't start
// with a numeric rank (header rows, separators) are skipped.
func ParseVictoryTable(html string) (*VictoryTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	vt := &VictoryTable{Rows: make([]VictoryRow, 0)}

	doc.Find("table").First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		rank, err := strconv.Atoi(cellText(tr, 0))
		if err != nil {
			return
		}
		wins, _ := strconv.Atoi(cellText(tr, 2))
		vt.Rows = append(vt.Rows, VictoryRow{
			Rank:   rank,
			Rider:  cellText(tr, 1),
			Nation: nation(tr),
			Wins:   wins,
		})
	})

	return vt, nil
}

// StageVictoryRow is one rider in a race's all-time stage victories table.
type StageVictoryRow struct {
	Rank   int    `json:"rank"`
	Rider  string `json:"rider"`
	Nation string `json:"nation,omitempty"`
	Stages int    `json:"stages"`
}

// StageVictories is a stage race's all-time stage victories table
// (race.php k=Z).
type StageVictories struct {
	Rows []StageVictoryRow `json:"rows"`
}

// ParseStageVictories parses the stage-victories tab. Same layout as the
// victory table with stage wins in place of overall wins.
func ParseStageVictories(html string) (*StageVictories, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	sv := &StageVictories{Rows: make([]StageVictoryRow, 0)}

	doc.Find("table").First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		rank, err := strconv.Atoi(cellText(tr, 0))
		if err != nil {
			return
		}
		stages, _ := strconv.Atoi(cellText(tr, 2))
		sv.Rows = append(sv.Rows, StageVictoryRow{
			Rank:   rank,
			Rider:  cellText(tr, 1),
			Nation: nation(tr),
			Stages: stages,
		})
	})

	return sv, nil
}
