// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/tobrien/trip-engine/internal/airports"
	"github.com/tobrien/trip-engine/internal/extract"
	"github.com/tobrien/trip-engine/internal/secrets"
	"github.com/tobrien/trip-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [query...]",
	Short: "Extract trip entities from a travel request",
	Long: `Parse runs the extraction pipeline over one free-text travel request and
prints the structured trip query. By default only the offline rules run;
--ai sends the request to Claude first and falls back to the rules on any
failure. --resolve additionally looks up IATA codes for the extracted
cities in the airport index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

	useAI, _ := cmd.Flags().GetBool("ai")
	model, _ := cmd.Flags().GetString("model")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	asJSON, _ := cmd.Flags().GetBool("json")
	resolve, _ := cmd.Flags().GetBool("resolve")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	cfg := types.ExtractionConfig{
		AIConfig: types.AIConfig{
			Model:      model,
			APIKey:     secrets.Anthropic(loadedSecrets),
			MaxRetries: maxRetries,
		},
		UseAI: useAI,
	}

	var backend extract.AIBackend
	if useAI {
		b, err := extract.NewClaudeBackend(cfg.AIConfig)
		if err != nil {
			return err
		}
		backend = b
	}

	extractor := extract.NewExtractor(cfg, backend)
	query, err := extractor.Extract(cmd.Context(), message)
	if err != nil {
		return err
	}

	if resolve {
		if err := resolveIATA(cmd, query, dataDir); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(query)
	}

	data, err := yaml.Marshal(query)
	if err != nil {
		return fmt.Errorf("marshaling query: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// resolveIATA attaches airport codes for the extracted cities. Lookup
// misses are reported on stderr but do not fail the parse.
func resolveIATA(cmd *cobra.Command, query *types.TripQuery, dataDir string) error {
	store, err := airports.NewStore(types.AirportsConfig{DataDir: dataDir})
	if err != nil {
		return err
	}
	defer store.Close()

	for _, loc := range []struct {
		city string
		dst  *string
	}{
		{query.Origin, &query.OriginIATA},
		{query.Destination, &query.DestinationIATA},
	} {
		if loc.city == "" {
			continue
		}
		a, err := store.Lookup(cmd.Context(), loc.city, airports.LookupHint{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: no airport for %q\n", loc.city)
			continue
		}
		*loc.dst = a.IATA
	}

	return nil
}

func init() {
	parseCmd.Flags().Bool("ai", false, "use the Claude backend with rule fallback")
	parseCmd.Flags().String("model", "", "AI model identifier for extraction")
	parseCmd.Flags().Int("max-retries", 3, "retry attempts for failed AI calls")
	parseCmd.Flags().Bool("json", false, "output the trip query as JSON")
	parseCmd.Flags().Bool("resolve", false, "resolve extracted cities to IATA codes")
	parseCmd.Flags().String("data-dir", "data/airports", "base directory for airport data (contains seed/, index/)")

	rootCmd.AddCommand(parseCmd)
}
