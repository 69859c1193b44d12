// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/tobrien/trip-engine/internal/httputil"
	"github.com/tobrien/trip-engine/pkg/types"
)

// FetchDataset downloads an airport dataset and decodes it. The upstream
// publishes a JSON array with column_1/airport_name/city_name/country_name
// fields, which the Airport json tags map directly.
func FetchDataset(ctx context.Context, client *http.Client, cfg types.HTTPConfig, url string) ([]types.Airport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching dataset: unexpected status %s", resp.Status)
	}

	var airports []types.Airport
	if err := json.NewDecoder(resp.Body).Decode(&airports); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	return airports, nil
}

// WriteSeed saves airports as a YAML seed file under dataDir/seed/, ready
// for the next Ingest run.
func WriteSeed(dataDir, name string, airports []types.Airport) (string, error) {
	dir := filepath.Join(dataDir, seedDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating seed directory: %w", err)
	}

	data, err := yaml.Marshal(airports)
	if err != nil {
		return "", fmt.Errorf("marshaling seed: %w", err)
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing seed file: %w", err)
	}

	return path, nil
}
