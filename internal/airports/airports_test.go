package airports

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/tobrien/trip-engine/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, seedDir), 0o755); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(types.AirportsConfig{
		DataDir:       tmpDir,
		MaxCandidates: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func writeSeedFile(t *testing.T, tmpDir, name string, airports []types.Airport) string {
	t.Helper()
	data, err := yaml.Marshal(airports)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(tmpDir, seedDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleAirports() []types.Airport {
	return []types.Airport{
		{IATA: "DFW", Name: "Dallas Fort Worth International Airport", City: "Dallas", Country: "United States"},
		{IATA: "DAL", Name: "Dallas Love Field", City: "Dallas", Country: "United States"},
		{IATA: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States"},
		{IATA: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom"},
		{IATA: "LCY", Name: "London City Airport", City: "London", Country: "United Kingdom"},
	}
}

func ingestHelper(t *testing.T, store *Store, tmpDir string) {
	t.Helper()
	writeSeedFile(t, tmpDir, "sample.yaml", sampleAirports())
	var buf strings.Builder
	if _, err := store.Ingest(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
}

// --- schema tests ---

func TestNewStoreCreatesSchema(t *testing.T) {
	store, _ := testSetup(t)

	tables := []string{"airports", "seed_status", "airports_fts"}
	for _, table := range tables {
		var count int
		err := store.db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type IN ('table','view') AND name = ?`, table,
		).Scan(&count)
		if err != nil {
			t.Fatal(err)
		}
		if count == 0 {
			t.Errorf("table %s not created", table)
		}
	}
}

// --- ingest tests ---

func TestIngest(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeSeedFile(t, tmpDir, "sample.yaml", sampleAirports())

	var buf strings.Builder
	summary, err := store.Ingest(context.Background(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 1 {
		t.Errorf("Indexed = %d, want 1", summary.Indexed)
	}
	if !strings.Contains(buf.String(), "indexed sample.yaml") {
		t.Errorf("output missing indexed line: %q", buf.String())
	}

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != len(sampleAirports()) {
		t.Errorf("Count = %d, want %d", n, len(sampleAirports()))
	}
}

func TestIngestSkipsUnchangedFiles(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)

	var buf strings.Builder
	summary, err := store.Ingest(context.Background(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	if summary.Indexed != 0 {
		t.Errorf("Indexed = %d, want 0", summary.Indexed)
	}
}

func TestIngestReprocessesModifiedFiles(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)

	path := filepath.Join(tmpDir, seedDir, "sample.yaml")
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	summary, err := store.Ingest(context.Background(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Updated != 1 {
		t.Errorf("Updated = %d, want 1", summary.Updated)
	}
}

func TestIngestReportsParseFailures(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := filepath.Join(tmpDir, seedDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("[not: valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	summary, err := store.Ingest(context.Background(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
	if !strings.Contains(buf.String(), "failed") {
		t.Errorf("output missing failed line: %q", buf.String())
	}
}

// --- add tests ---

func TestAddUpsertsByCode(t *testing.T) {
	store, _ := testSetup(t)
	ctx := context.Background()

	err := store.Add(ctx, []types.Airport{
		{IATA: "tst", Name: "Testville Airport", City: "Testville", Country: "United States"},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Same code again replaces the record instead of duplicating it.
	err = store.Add(ctx, []types.Airport{
		{IATA: "TST", Name: "Testville International Airport", City: "Testville", Country: "United States"},
	})
	if err != nil {
		t.Fatal(err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	a, err := store.Lookup(ctx, "TST", LookupHint{})
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "Testville International Airport" {
		t.Errorf("Name = %q, want updated record", a.Name)
	}
}

func TestAddSkipsEmptyCodes(t *testing.T) {
	store, _ := testSetup(t)

	err := store.Add(context.Background(), []types.Airport{
		{IATA: "", Name: "Nowhere Field"},
		{IATA: "ABC", Name: "Somewhere Airport", City: "Somewhere"},
	})
	if err != nil {
		t.Fatal(err)
	}

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

// --- lookup tests ---

func TestLookupCodePassthrough(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)
	ctx := context.Background()

	a, err := store.Lookup(ctx, "dfw", LookupHint{})
	if err != nil {
		t.Fatal(err)
	}
	if a.IATA != "DFW" || a.City != "Dallas" {
		t.Errorf("got %+v, want the indexed DFW record", a)
	}

	// Unknown codes pass through uppercased without a lookup failure.
	a, err = store.Lookup(ctx, "zzz", LookupHint{})
	if err != nil {
		t.Fatal(err)
	}
	if a.IATA != "ZZZ" || a.Name != "" {
		t.Errorf("got %+v, want bare ZZZ passthrough", a)
	}
}

func TestLookupPrefersPrimaryAirport(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)
	ctx := context.Background()

	tests := []struct {
		location string
		want     string
	}{
		{"dallas", "DFW"},
		{"Dallas", "DFW"},
		{"las vegas", "LAS"},
		{"london", "LHR"},
	}

	for _, tt := range tests {
		a, err := store.Lookup(ctx, tt.location, LookupHint{})
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", tt.location, err)
		}
		if a.IATA != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.location, a.IATA, tt.want)
		}
	}
}

func TestLookupPenalizesRegionalFields(t *testing.T) {
	store, _ := testSetup(t)
	ctx := context.Background()

	err := store.Add(ctx, []types.Airport{
		{IATA: "TVA", Name: "Testville Regional Airport", City: "Testville", Country: "United States"},
		{IATA: "TVB", Name: "Testville Airport", City: "Testville", Country: "United States"},
	})
	if err != nil {
		t.Fatal(err)
	}

	a, err := store.Lookup(ctx, "testville", LookupHint{})
	if err != nil {
		t.Fatal(err)
	}
	if a.IATA != "TVB" {
		t.Errorf("Lookup(testville) = %s, want TVB (regional field penalized)", a.IATA)
	}
}

func TestLookupCountryHint(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)
	ctx := context.Background()

	// Alias forms resolve to the same country.
	a, err := store.Lookup(ctx, "london", LookupHint{Country: "UK"})
	if err != nil {
		t.Fatal(err)
	}
	if a.IATA != "LHR" {
		t.Errorf("Lookup(london, UK) = %s, want LHR", a.IATA)
	}

	// A hint that excludes every candidate is a miss.
	_, err = store.Lookup(ctx, "dallas", LookupHint{Country: "United Kingdom"})
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("err = %v, want ErrNoMatch", err)
	}
}

func TestLookupSubstringFallback(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)

	// Partial words miss the FTS tokenizer and fall through to the scan.
	a, err := store.Lookup(context.Background(), "las veg", LookupHint{})
	if err != nil {
		t.Fatal(err)
	}
	if a.IATA != "LAS" {
		t.Errorf("Lookup(las veg) = %s, want LAS", a.IATA)
	}
}

func TestLookupNoMatch(t *testing.T) {
	store, tmpDir := testSetup(t)
	ingestHelper(t, store, tmpDir)
	ctx := context.Background()

	_, err := store.Lookup(ctx, "atlantis", LookupHint{})
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("err = %v, want ErrNoMatch", err)
	}

	_, err = store.Lookup(ctx, "", LookupHint{})
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("err for empty location = %v, want ErrNoMatch", err)
	}
}

// --- helper tests ---

func TestIsIATACode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"DFW", true},
		{"las", true},
		{"DF", false},
		{"DFWX", false},
		{"D1W", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsIATACode(tt.in); got != tt.want {
			t.Errorf("IsIATACode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"USA", "united states"},
		{"United States of America", "united states"},
		{"u.s.", "united states"},
		{"UK", "united kingdom"},
		{"England", "united kingdom"},
		{"France", "france"},
		{"  Japan  ", "japan"},
	}

	for _, tt := range tests {
		if got := NormalizeCountry(tt.in); got != tt.want {
			t.Errorf("NormalizeCountry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
