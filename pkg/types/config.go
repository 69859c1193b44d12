package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "trip-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExtractionConfig holds settings for the query extraction stage.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`

	// UseAI enables the AI backend. The rule pipeline always remains the
	// fallback, so extraction works without an API key.
	UseAI bool `json:"use_ai" yaml:"use_ai"`
}

// AirportsConfig holds settings for the airport index.
type AirportsConfig struct {
	// DataDir is the base directory for airport data (contains seed/, index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxCandidates is the maximum number of lookup candidates considered
	// before scoring (default 20).
	MaxCandidates int `json:"max_candidates" yaml:"max_candidates"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	HTTP       HTTPConfig       `json:"http" yaml:"http"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Airports   AirportsConfig   `json:"airports" yaml:"airports"`
}
