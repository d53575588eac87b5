package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pfrederiksen/firstcycling/internal/endpoint"
	"github.com/pfrederiksen/firstcycling/internal/race"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteMatches writes search results.
func WriteMatches(w io.Writer, matches []race.Match, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No race found.")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s (id %d, category %s)\n", m.Name, m.ID, m.Category)
	}
	return nil
}

// WritePage writes a generic race page: its title and every table on it.
func WritePage(w io.Writer, page *endpoint.Page, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, page)
	}

	if page.Title != "" {
		fmt.Fprintln(w, page.Title)
		fmt.Fprintln(w)
	}
	for _, tbl := range page.Tables {
		if tbl.Caption != "" {
			fmt.Fprintf(w, "%s\n", tbl.Caption)
		}
		writeRows(w, tbl.Headers, tbl.Rows)
		fmt.Fprintln(w)
	}
	return nil
}

// WriteVictoryTable writes an all-time victory table.
func WriteVictoryTable(w io.Writer, vt *endpoint.VictoryTable, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, vt)
	}

	rows := make([][]string, 0, len(vt.Rows))
	for _, r := range vt.Rows {
		rows = append(rows, []string{fmt.Sprint(r.Rank), r.Rider, r.Nation, fmt.Sprint(r.Wins)})
	}
	writeRows(w, []string{"#", "Rider", "Nation", "Wins"}, rows)
	return nil
}

// WriteStageVictories writes an all-time stage victories table.
func WriteStageVictories(w io.Writer, sv *endpoint.StageVictories, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, sv)
	}

	rows := make([][]string, 0, len(sv.Rows))
	for _, r := range sv.Rows {
		rows = append(rows, []string{fmt.Sprint(r.Rank), r.Rider, r.Nation, fmt.Sprint(r.Stages)})
	}
	writeRows(w, []string{"#", "Rider", "Nation", "Stages"}, rows)
	return nil
}

// WriteResults writes an edition result table.
func WriteResults(w io.Writer, res *endpoint.EditionResults, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, res)
	}

	if res.Title != "" {
		fmt.Fprintln(w, res.Title)
		fmt.Fprintln(w)
	}
	rows := make([][]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, []string{r.Pos, r.Rider, r.Team, r.Time})
	}
	writeRows(w, []string{"Pos", "Rider", "Team", "Time"}, rows)
	return nil
}

// WriteStartlist writes a startlist grouped by team.
func WriteStartlist(w io.Writer, sl *endpoint.Startlist, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, sl)
	}

	if len(sl.Teams) == 0 {
		fmt.Fprintln(w, "No startlist available.")
		return nil
	}
	for _, team := range sl.Teams {
		fmt.Fprintln(w, team.Name)
		for _, rider := range team.Riders {
			fmt.Fprintf(w, "  %3d  %s\n", rider.Number, rider.Name)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// writeRows renders one aligned table.
func writeRows(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
