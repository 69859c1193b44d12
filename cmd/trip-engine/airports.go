// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tobrien/trip-engine/internal/airports"
	"github.com/tobrien/trip-engine/pkg/types"
)

var airportsCmd = &cobra.Command{
	Use:   "airports",
	Short: "Manage the airport index (ingest, add, lookup, fetch)",
	Long: `Airports manages a local SQLite index of airports built from YAML seed
files. Use subcommands to ingest seeds, patch in curated airports, resolve
city names to IATA codes, or fetch a published dataset.`,
}

func airportsConfig(cmd *cobra.Command) types.AirportsConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	maxCandidates, _ := cmd.Flags().GetInt("max-candidates")
	return types.AirportsConfig{DataDir: dataDir, MaxCandidates: maxCandidates}
}

// --- ingest subcommand ---

var airportsIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest airport seed files into the index",
	Long: `Ingest reads YAML seed files from the data directory's seed/ folder and
populates the SQLite index. Unchanged seed files are skipped on
subsequent runs.`,
	RunE: runAirportsIngest,
}

func runAirportsIngest(cmd *cobra.Command, args []string) error {
	store, err := airports.NewStore(airportsConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d seed file(s) failed ingestion", summary.Failed)
	}
	return nil
}

// --- add subcommand ---

var airportsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a curated airport to the index",
	Long: `Add upserts one airport directly into the index, bypassing seed files.
Useful for patching gaps in the upstream dataset (regional fields near
national parks, new terminals, renames).`,
	RunE: runAirportsAdd,
}

func runAirportsAdd(cmd *cobra.Command, args []string) error {
	iata, _ := cmd.Flags().GetString("iata")
	name, _ := cmd.Flags().GetString("name")
	city, _ := cmd.Flags().GetString("city")
	country, _ := cmd.Flags().GetString("country")

	if iata == "" || name == "" {
		return fmt.Errorf("--iata and --name are required")
	}

	store, err := airports.NewStore(airportsConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	airport := types.Airport{IATA: iata, Name: name, City: city, Country: country}
	if err := store.Add(cmd.Context(), []types.Airport{airport}); err != nil {
		return err
	}

	fmt.Printf("added %s: %s\n", strings.ToUpper(iata), name)
	return nil
}

// --- lookup subcommand ---

var airportsLookupCmd = &cobra.Command{
	Use:   "lookup [city]",
	Short: "Resolve a city name to the best-matching airport",
	Long: `Lookup scores index candidates for a city name and prints the best
match. Three-letter codes pass through as IATA. --country narrows
candidates when city names are ambiguous across countries.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAirportsLookup,
}

func runAirportsLookup(cmd *cobra.Command, args []string) error {
	country, _ := cmd.Flags().GetString("country")
	international, _ := cmd.Flags().GetBool("international")

	store, err := airports.NewStore(airportsConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	location := strings.Join(args, " ")
	hint := airports.LookupHint{Country: country, International: international}

	airport, err := store.Lookup(cmd.Context(), location, hint)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\t%s\t%s\n", airport.IATA, airport.Name, airport.City, airport.Country)
	return nil
}

// --- fetch subcommand ---

var airportsFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download an airport dataset into a seed file",
	Long: `Fetch downloads a published airport dataset (JSON array with column_1,
airport_name, city_name, country_name fields) and writes it as a YAML
seed file. Run ingest afterwards to index it.`,
	RunE: runAirportsFetch,
}

func runAirportsFetch(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	seedName, _ := cmd.Flags().GetString("seed-name")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	if url == "" {
		return fmt.Errorf("--url is required")
	}

	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: "trip-engine/" + version,
	}
	client := &http.Client{Timeout: httpCfg.Timeout}

	fetched, err := airports.FetchDataset(cmd.Context(), client, httpCfg, url)
	if err != nil {
		return err
	}

	path, err := airports.WriteSeed(dataDir, seedName, fetched)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d airports to %s\n", len(fetched), path)
	return nil
}

func init() {
	airportsCmd.PersistentFlags().String("data-dir", "data/airports", "base directory for airport data (contains seed/, index/)")
	airportsCmd.PersistentFlags().Int("max-candidates", 20, "maximum lookup candidates considered before scoring")

	airportsAddCmd.Flags().String("iata", "", "three-letter airport code")
	airportsAddCmd.Flags().String("name", "", "full airport name")
	airportsAddCmd.Flags().String("city", "", "served city")
	airportsAddCmd.Flags().String("country", "", "country name")

	airportsLookupCmd.Flags().String("country", "", "restrict candidates to one country")
	airportsLookupCmd.Flags().Bool("international", false, "boost international airports")

	airportsFetchCmd.Flags().String("url", "", "dataset URL")
	airportsFetchCmd.Flags().String("seed-name", "fetched", "seed file name (without extension)")
	airportsFetchCmd.Flags().Duration("timeout", 30*time.Second, "HTTP request timeout")

	airportsCmd.AddCommand(airportsIngestCmd, airportsAddCmd, airportsLookupCmd, airportsFetchCmd)
	rootCmd.AddCommand(airportsCmd)
}
