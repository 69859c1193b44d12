// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/tobrien/trip-engine/pkg/types"
)

// ErrNoMatch is returned when no airport in the index matches the location.
var ErrNoMatch = errors.New("no matching airport")

// LookupHint narrows a lookup when the query carries extra context.
type LookupHint struct {
	// Country filters candidates to one country (aliases like "USA" are
	// accepted).
	Country string

	// International boosts international airports, for queries that imply
	// an international trip.
	International bool
}

// candidate pairs an airport with its lookup score.
type candidate struct {
	airport types.Airport
	score   float64
}

// Lookup resolves a city or airport name to the best-scoring airport.
// Three-letter codes pass through as IATA. Candidates come from the FTS
// index first, then a substring scan as fallback; ties are broken by the
// scoring rules (international hubs up, heliports and regional fields
// down). Returns ErrNoMatch when nothing qualifies.
func (s *Store) Lookup(ctx context.Context, location string, hint LookupHint) (*types.Airport, error) {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return nil, ErrNoMatch
	}

	if IsIATACode(loc) {
		code := strings.ToUpper(loc)
		if a, err := s.byCode(ctx, code); err == nil {
			return a, nil
		}
		// Not in the index; trust the caller's code.
		return &types.Airport{IATA: code}, nil
	}

	candidates, err := s.ftsCandidates(ctx, loc)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		candidates, err = s.scanCandidates(ctx, loc)
		if err != nil {
			return nil, err
		}
	}

	scored := make([]candidate, 0, len(candidates))
	for _, a := range candidates {
		if hint.Country != "" &&
			NormalizeCountry(a.Country) != NormalizeCountry(hint.Country) {
			continue
		}
		scored = append(scored, candidate{airport: a, score: scoreAirport(a, hint)})
	}

	if len(scored) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoMatch, location)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	best := scored[0].airport
	return &best, nil
}

func (s *Store) byCode(ctx context.Context, code string) (*types.Airport, error) {
	var a types.Airport
	err := s.db.QueryRowContext(ctx,
		`SELECT iata, name, city, country FROM airports WHERE iata = ?`, code,
	).Scan(&a.IATA, &a.Name, &a.City, &a.Country)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ftsCandidates queries the FTS index with the location as a quoted phrase.
func (s *Store) ftsCandidates(ctx context.Context, loc string) ([]types.Airport, error) {
	query := `"` + strings.ReplaceAll(loc, `"`, ``) + `"`

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.iata, a.name, a.city, a.country
		 FROM airports_fts
		 JOIN airports a ON a.rowid = airports_fts.rowid
		 WHERE airports_fts MATCH ?
		 ORDER BY airports_fts.rank
		 LIMIT ?`, query, s.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("querying airport index: %w", err)
	}
	defer rows.Close()

	return collectAirports(rows)
}

// scanCandidates is the substring fallback for names the tokenizer misses
// (e.g. partial words).
func (s *Store) scanCandidates(ctx context.Context, loc string) ([]types.Airport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT iata, name, city, country FROM airports
		 WHERE instr(lower(city), ?) > 0 OR instr(lower(name), ?) > 0
		 LIMIT ?`, loc, loc, s.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("scanning airports: %w", err)
	}
	defer rows.Close()

	return collectAirports(rows)
}

func collectAirports(rows *sql.Rows) ([]types.Airport, error) {
	var airports []types.Airport
	for rows.Next() {
		var a types.Airport
		if err := rows.Scan(&a.IATA, &a.Name, &a.City, &a.Country); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

// majorHubs and majorCities bias scoring toward primary airports when a
// city has several fields.
var (
	majorHubs = []string{
		"heathrow", "jfk", "charles de gaulle", "changi", "incheon",
		"dubai", "amsterdam", "frankfurt", "haneda", "pudong",
	}
	majorCities = []string{
		"beijing", "shanghai", "london", "paris", "new york", "tokyo",
		"dubai", "singapore", "seoul", "frankfurt", "amsterdam",
	}
	penaltyTerms = []string{
		"heliport", "seaplane", "base", "station", "regional",
		"municipal", "military", "cargo",
	}
)

// scoreAirport ranks an airport by how likely it is to be the primary
// field for a commercial trip. Constants mirror the curation rules the
// seed data was built with.
func scoreAirport(a types.Airport, hint LookupHint) float64 {
	name := strings.ToLower(a.Name)
	var score float64

	if strings.Contains(name, "international") || strings.Contains(name, "intl") {
		score += 2000
	}
	if strings.Contains(name, "capital") {
		score += 1500
	}
	if containsAny(name, majorHubs) {
		score += 2000
	}
	if containsAny(name, majorCities) {
		score += 1000
	}
	if strings.Contains(name, "airport") {
		score += 100
	}
	if hint.International && strings.Contains(name, "international") {
		score += 500
	}
	if containsAny(name, penaltyTerms) {
		score -= 3000
	}

	return score
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// IsIATACode reports whether s looks like a three-letter airport code.
func IsIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// countryAliases folds common country-name variants onto one form.
var countryAliases = map[string]string{
	"usa":                      "united states",
	"united states of america": "united states",
	"us":                       "united states",
	"u.s.":                     "united states",
	"u.s.a.":                   "united states",
	"uk":                       "united kingdom",
	"great britain":            "united kingdom",
	"england":                  "united kingdom",
}

// NormalizeCountry lowercases and de-aliases a country name for comparison.
func NormalizeCountry(country string) string {
	c := strings.ToLower(strings.TrimSpace(country))
	if normalized, ok := countryAliases[c]; ok {
		return normalized
	}
	return c
}
