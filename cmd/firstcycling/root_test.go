package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/firstcycling/internal/race"
)

func TestNewRootCmdSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	expected := []string{
		"search", "overview", "victory-table", "year-by-year",
		"youngest-oldest", "stage-victories", "results", "startlist",
		"stage-profiles",
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, name := range expected {
		if !names[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

// writeTestConfig points the CLI at a stub server with caching disabled.
func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "base_url: " + baseURL + "\ncache_dir: \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func serveFixture(t *testing.T, name string) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture %s: %v", name, err)
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
}

func TestSearchCommand(t *testing.T) {
	srv := serveFixture(t, "search_results.html")
	defer srv.Close()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"search", "Milan Sanremo",
		"--config", writeTestConfig(t, srv.URL),
		"--format", "json",
		"--year", "2025",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("search command failed: %v", err)
	}

	var matches []race.Match
	if err := json.Unmarshal(out.Bytes(), &matches); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(matches) != 1 || matches[0].ID != 4 {
		t.Errorf("unexpected matches: %+v", matches)
	}
}

func TestVictoryTableCommand(t *testing.T) {
	srv := serveFixture(t, "victory_table.html")
	defer srv.Close()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"victory-table", "4",
		"--config", writeTestConfig(t, srv.URL),
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("victory-table command failed: %v", err)
	}
	if !strings.Contains(out.String(), "Eddy Merckx") {
		t.Errorf("expected victory table output, got:\n%s", out.String())
	}
}

func TestInvalidFormatFlag(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"search", "Milan Sanremo", "--format", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for invalid format")
	}
}

func TestUnknownClassificationFlag(t *testing.T) {
	srv := serveFixture(t, "race_overview.html")
	defer srv.Close()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"overview", "4",
		"--config", writeTestConfig(t, srv.URL),
		"--classification", "sprint",
	})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for unknown classification")
	}
}

func TestResultsCommandRequiresYear(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"results", "4"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error when --year is missing")
	}
}
