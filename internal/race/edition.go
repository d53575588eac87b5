package race

import (
	"fmt"

	"github.com/pfrederiksen/firstcycling/internal/classification"
	"github.com/pfrederiksen/firstcycling/internal/client"
	"github.com/pfrederiksen/firstcycling/internal/endpoint"
	"github.com/pfrederiksen/firstcycling/internal/logger"
)

// Edition wraps one year's running of a race. Immutable after
// construction.
type Edition struct {
	fc   Fetcher
	id   int
	year int
}

// NewEdition creates an Edition facade for the given race id and year.
func NewEdition(fc Fetcher, id, year int) Edition {
	return Edition{fc: fc, id: id, year: year}
}

// ID returns the firstcycling.com race id.
func (e Edition) ID() int {
	return e.id
}

// Year returns the edition year.
func (e Edition) Year() int {
	return e.year
}

// ResultsOptions scope an edition results request. Classification None
// requests the default table; Stage nil requests the overall results,
// stage 0 is the prologue.
type ResultsOptions struct {
	Classification classification.Classification
	Stage          *int
}

// Results fetches the edition's result table for a classification or
// stage. Stage numbers are zero-padded to two digits on the wire.
//
// From 2023 on the site shows GC standings on the results table even when
// another classification is requested; a warning is logged so callers
// know to check the standings instead.
func (e Edition) Results(opts ResultsOptions) (*endpoint.EditionResults, error) {
	stage := ""
	if opts.Stage != nil {
		stage = fmt.Sprintf("%02d", *opts.Stage)
	}

	if e.year >= 2023 && opts.Classification != classification.None && opts.Classification != classification.GC {
		logger.Warn("results table may show GC standings for this classification", logger.Fields{
			"race":           e.id,
			"year":           e.year,
			"classification": opts.Classification.String(),
		})
	}

	html, err := e.fc.RaceEndpoint(e.id, client.RaceQuery{
		Year:           e.year,
		Classification: int(opts.Classification),
		Stage:          stage,
	})
	if err != nil {
		return nil, err
	}
	return endpoint.ParseEditionResults(html)
}

// StageProfiles fetches the edition's stage profiles page.
func (e Edition) StageProfiles() (*endpoint.Page, error) {
	html, err := e.fc.RaceEndpoint(e.id, client.RaceQuery{Year: e.year, Stage: "all"})
	if err != nil {
		return nil, err
	}
	return endpoint.ParsePage(html)
}

// Startlist fetches the edition startlist in normal mode.
func (e Edition) Startlist() (*endpoint.Startlist, error) {
	html, err := e.fc.RaceEndpoint(e.id, client.RaceQuery{Year: e.year, Tab: "8"})
	if err != nil {
		return nil, err
	}
	return endpoint.ParseStartlist(html)
}

// StartlistExtended fetches the edition startlist in extended mode.
func (e Edition) StartlistExtended() (*endpoint.Startlist, error) {
	html, err := e.fc.RaceEndpoint(e.id, client.RaceQuery{Year: e.year, Tab: "9"})
	if err != nil {
		return nil, err
	}
	return endpoint.ParseStartlist(html)
}
