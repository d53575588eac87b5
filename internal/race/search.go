package race

import (
	"github.com/pfrederiksen/firstcycling/internal/logger"
	"github.com/pfrederiksen/firstcycling/internal/search"
)

// Match is one resolved race from a search: the matched site id with the
// query echoed back. Country and date are not available from the search
// page and stay empty.
type Match struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// Search resolves a free-text race name to at most one Match. Year 0
// means the current year; an empty category defaults to "1" (WorldTour).
//
// Search never fails: fetch errors are logged and coalesced with the
// no-match case into an empty slice, so callers always get a list.
func Search(fc Fetcher, query string, year int, category string) []Match {
	return SearchThreshold(fc, query, year, category, search.DefaultThreshold)
}

// SearchThreshold is Search with an explicit similarity threshold.
func SearchThreshold(fc Fetcher, query string, year int, category string, threshold float64) []Match {
	if category == "" {
		category = "1"
	}

	html, err := fc.SearchRace(query, year, category)
	if err != nil {
		logger.Error("race search failed", logger.Fields{
			"query": query,
			"year":  year,
		}, err)
		return []Match{}
	}

	id, ok := search.RaceIDThreshold(query, html, threshold)
	if !ok {
		logger.Debug("no race matched query", logger.Fields{"query": query})
		return []Match{}
	}

	return []Match{{
		ID:       id,
		Name:     query,
		Category: category,
	}}
}
