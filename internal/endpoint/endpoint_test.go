package endpoint

import (
	"os"
	"testing"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture %s: %v", name, err)
	}
	return string(data)
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(loadFixture(t, "race_overview.html"))
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}

	if page.Title != "Milano-Sanremo" {
		t.Errorf("expected title Milano-Sanremo, got %q", page.Title)
	}
	if len(page.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(page.Tables))
	}

	winners := page.Tables[0]
	if winners.Caption != "Last winners" {
		t.Errorf("expected caption 'Last winners', got %q", winners.Caption)
	}
	if len(winners.Headers) != 2 || winners.Headers[0] != "Year" {
		t.Errorf("unexpected headers: %v", winners.Headers)
	}
	if len(winners.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(winners.Rows))
	}
	if winners.Rows[0][1] != "Mathieu van der Poel" {
		t.Errorf("unexpected first row: %v", winners.Rows[0])
	}

	details := page.Tables[1]
	if len(details.Rows) != 2 || details.Rows[1][1] != "288 km" {
		t.Errorf("unexpected details rows: %v", details.Rows)
	}
}

func TestParsePageEmptyHTML(t *testing.T) {
	for _, html := range []string{"", "not html at all", "<table><tr><td></table>"} {
		page, err := ParsePage(html)
		if err != nil {
			t.Fatalf("ParsePage(%q) failed: %v", html, err)
		}
		for _, tbl := range page.Tables {
			for _, row := range tbl.Rows {
				if len(row) == 0 {
					t.Errorf("empty row parsed from %q", html)
				}
			}
		}
	}
}

func TestParseVictoryTable(t *testing.T) {
	vt, err := ParseVictoryTable(loadFixture(t, "victory_table.html"))
	if err != nil {
		t.Fatalf("ParseVictoryTable failed: %v", err)
	}

	if len(vt.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(vt.Rows))
	}

	first := vt.Rows[0]
	if first.Rank != 1 {
		t.Errorf("expected rank 1, got %d", first.Rank)
	}
	if first.Rider != "Eddy Merckx" {
		t.Errorf("expected rider Eddy Merckx, got %q", first.Rider)
	}
	if first.Nation != "Belgium" {
		t.Errorf("expected nation Belgium, got %q", first.Nation)
	}
	if first.Wins != 7 {
		t.Errorf("expected 7 wins, got %d", first.Wins)
	}

	// Tied ranks keep their own rows
	if vt.Rows[2].Rank != 3 || vt.Rows[3].Rank != 3 {
		t.Errorf("expected tied ranks 3, got %d and %d", vt.Rows[2].Rank, vt.Rows[3].Rank)
	}
}

func TestParseVictoryTableNoTable(t *testing.T) {
	vt, err := ParseVictoryTable("<html><body><p>nothing</p></body></html>")
	if err != nil {
		t.Fatalf("ParseVictoryTable failed: %v", err)
	}
	if len(vt.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(vt.Rows))
	}
}

func TestParseStageVictories(t *testing.T) {
	sv, err := ParseStageVictories(loadFixture(t, "stage_victories.html"))
	if err != nil {
		t.Fatalf("ParseStageVictories failed: %v", err)
	}

	if len(sv.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(sv.Rows))
	}
	if sv.Rows[0].Rider != "Eddy Merckx" || sv.Rows[0].Stages != 34 {
		t.Errorf("unexpected first row: %+v", sv.Rows[0])
	}
	if sv.Rows[1].Nation != "Great Britain" {
		t.Errorf("expected nation Great Britain, got %q", sv.Rows[1].Nation)
	}
}

func TestParseEditionResults(t *testing.T) {
	res, err := ParseEditionResults(loadFixture(t, "edition_results.html"))
	if err != nil {
		t.Fatalf("ParseEditionResults failed: %v", err)
	}

	if res.Title != "Milano-Sanremo 2025" {
		t.Errorf("expected title Milano-Sanremo 2025, got %q", res.Title)
	}
	if len(res.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(res.Rows))
	}

	winner := res.Rows[0]
	if winner.Pos != "1" || winner.Rider != "Mathieu van der Poel" {
		t.Errorf("unexpected winner row: %+v", winner)
	}
	if winner.Team != "Alpecin-Deceuninck" {
		t.Errorf("expected team Alpecin-Deceuninck, got %q", winner.Team)
	}
	if winner.Time != "6:18:43" {
		t.Errorf("expected time 6:18:43, got %q", winner.Time)
	}

	// Non-finishers keep their textual position
	dnf := res.Rows[3]
	if dnf.Pos != "DNF" {
		t.Errorf("expected DNF position, got %q", dnf.Pos)
	}
	if dnf.Rider != "Julian Alaphilippe" {
		t.Errorf("unexpected DNF rider: %q", dnf.Rider)
	}
}

func TestParseStartlist(t *testing.T) {
	sl, err := ParseStartlist(loadFixture(t, "startlist.html"))
	if err != nil {
		t.Fatalf("ParseStartlist failed: %v", err)
	}

	if len(sl.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(sl.Teams))
	}

	alpecin := sl.Teams[0]
	if alpecin.Name != "Alpecin-Deceuninck" {
		t.Errorf("expected team Alpecin-Deceuninck, got %q", alpecin.Name)
	}
	if len(alpecin.Riders) != 3 {
		t.Fatalf("expected 3 riders, got %d", len(alpecin.Riders))
	}
	if alpecin.Riders[0].Number != 1 || alpecin.Riders[0].Name != "Mathieu van der Poel" {
		t.Errorf("unexpected first rider: %+v", alpecin.Riders[0])
	}

	uae := sl.Teams[1]
	if uae.Riders[0].Number != 11 || uae.Riders[0].Name != "Tadej Pogacar" {
		t.Errorf("unexpected UAE rider: %+v", uae.Riders[0])
	}
}

func TestParseStartlistJunkHTML(t *testing.T) {
	sl, err := ParseStartlist("<div><span>no tables")
	if err != nil {
		t.Fatalf("ParseStartlist failed: %v", err)
	}
	if len(sl.Teams) != 0 {
		t.Errorf("expected no teams, got %d", len(sl.Teams))
	}
}
