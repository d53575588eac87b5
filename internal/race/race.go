package race

import (
	"strconv"

	"github.com/pfrederiksen/firstcycling/internal/classification"
	"github.com/pfrederiksen/firstcycling/internal/client"
	"github.com/pfrederiksen/firstcycling/internal/endpoint"
)

// Fetcher is the slice of the client layer the facades need. Implemented
// by *client.Client.
type Fetcher interface {
	RaceEndpoint(raceID int, q client.RaceQuery) (string, error)
	SearchRace(query string, year int, category string) (string, error)
}

// Race wraps a firstcycling.com race id. Immutable; all operations fetch
// and parse on demand, propagating any fetch or parse error unchanged.
type Race struct {
	fc Fetcher
	id int
}

// New creates a Race facade for the given site id.
func New(fc Fetcher, id int) Race {
	return Race{fc: fc, id: id}
}

// ID returns the firstcycling.com race id.
func (r Race) ID() int {
	return r.id
}

// Edition returns the facade for one year's running of this race.
func (r Race) Edition(year int) Edition {
	return Edition{fc: r.fc, id: r.id, year: year}
}

// Overview fetches the race overview page, optionally scoped to a
// classification.
func (r Race) Overview(cl classification.Classification) (*endpoint.Page, error) {
	html, err := r.fc.RaceEndpoint(r.id, client.RaceQuery{Tab: classificationTab(cl)})
	if err != nil {
		return nil, err
	}
	return endpoint.ParsePage(html)
}

// VictoryTable fetches the race's all-time victory table.
func (r Race) VictoryTable() (*endpoint.VictoryTable, error) {
	html, err := r.fc.RaceEndpoint(r.id, client.RaceQuery{Tab: "W"})
	if err != nil {
		return nil, err
	}
	return endpoint.ParseVictoryTable(html)
}

// YearByYear fetches year-by-year race statistics for a classification.
func (r Race) YearByYear(cl classification.Classification) (*endpoint.Page, error) {
	html, err := r.fc.RaceEndpoint(r.id, client.RaceQuery{Tab: "X", TabFilter: int(cl)})
	if err != nil {
		return nil, err
	}
	return endpoint.ParsePage(html)
}

// YoungestOldestWinners fetches the race's youngest and oldest winners
// statistics.
func (r Race) YoungestOldestWinners() (*endpoint.Page, error) {
	html, err := r.fc.RaceEndpoint(r.id, client.RaceQuery{Tab: "Y"})
	if err != nil {
		return nil, err
	}
	return endpoint.ParsePage(html)
}

// StageVictories fetches the race's all-time stage victories table.
func (r Race) StageVictories() (*endpoint.StageVictories, error) {
	html, err := r.fc.RaceEndpoint(r.id, client.RaceQuery{Tab: "Z"})
	if err != nil {
		return nil, err
	}
	return endpoint.ParseStageVictories(html)
}

// classificationTab renders a classification code as a k= tab value,
// empty for None.
func classificationTab(cl classification.Classification) string {
	if cl == classification.None {
		return ""
	}
	return strconv.Itoa(int(cl))
}
