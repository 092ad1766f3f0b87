package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ig-advisor-go/internal/aggregator"
)

type Config struct {
	Port            string
	DatasetPath     string
	DefaultUserID   string
	EngineFile      string
	PostingTimezone string
	RequestTimeout  time.Duration
	LLM             LLMConfig
	Engine          EngineConfig
}

type LLMConfig struct {
	GatewayURL string
	Model      string
	APIKey     string
	UseMock    bool
}

// EngineConfig overrides aggregator defaults. Unset fields keep the
// default; set fields must be positive.
type EngineConfig struct {
	QuartileFraction          *float64 `yaml:"quartile_fraction"`
	RecentCount               *int     `yaml:"recent_count"`
	TopTagCount               *int     `yaml:"top_tag_count"`
	SampleSize                *int     `yaml:"sample_size"`
	CaptionMaxLength          *int     `yaml:"caption_max_length"`
	MissingMetricsWarnRatio   *float64 `yaml:"missing_metrics_warn_ratio"`
	ManualIncompleteWarnRatio *float64 `yaml:"manual_incomplete_warn_ratio"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	envOr := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:            envOr("PORT", "8080"),
		DatasetPath:     envOr("DATASET_PATH", "instagram_export.xlsx"),
		DefaultUserID:   getenv("DEFAULT_USER_ID"),
		EngineFile:      getenv("ENGINE_CONFIG"),
		PostingTimezone: envOr("POSTING_TIMEZONE", "UTC"),
		RequestTimeout:  30 * time.Second,
		LLM: LLMConfig{
			GatewayURL: getenv("LLM_GATEWAY_URL"),
			Model:      getenv("LLM_MODEL"),
			APIKey:     getenv("LLM_API_KEY"),
			UseMock:    getenv("USE_MOCK_LLM") == "true",
		},
	}

	if v := getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SEC %q: %w", v, err)
		}
		cfg.RequestTimeout = time.Duration(sec) * time.Second
	}

	if cfg.EngineFile != "" {
		engine, err := LoadEngineFile(cfg.EngineFile)
		if err != nil {
			return nil, err
		}
		cfg.Engine = engine
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadEngineFile parses engine overrides from YAML.
func LoadEngineFile(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("failed to read engine config %s: %w", path, err)
	}
	var ec EngineConfig
	if err := yaml.Unmarshal(data, &ec); err != nil {
		return EngineConfig{}, fmt.Errorf("failed to parse engine config %s: %w", path, err)
	}
	return ec, nil
}

func (c *Config) validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SEC must be positive")
	}
	if _, err := time.LoadLocation(c.PostingTimezone); err != nil {
		return fmt.Errorf("unknown POSTING_TIMEZONE %q: %w", c.PostingTimezone, err)
	}
	if !c.LLM.UseMock && c.LLM.GatewayURL != "" && c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required when LLM_GATEWAY_URL is set")
	}
	return c.Engine.validate()
}

func (e EngineConfig) validate() error {
	fractions := []struct {
		name string
		v    *float64
	}{
		{"quartile_fraction", e.QuartileFraction},
		{"missing_metrics_warn_ratio", e.MissingMetricsWarnRatio},
		{"manual_incomplete_warn_ratio", e.ManualIncompleteWarnRatio},
	}
	for _, f := range fractions {
		if f.v != nil && (*f.v <= 0 || *f.v > 1) {
			return fmt.Errorf("%s must be within (0, 1], got %v", f.name, *f.v)
		}
	}

	counts := []struct {
		name string
		v    *int
	}{
		{"recent_count", e.RecentCount},
		{"top_tag_count", e.TopTagCount},
		{"sample_size", e.SampleSize},
		{"caption_max_length", e.CaptionMaxLength},
	}
	for _, c := range counts {
		if c.v != nil && *c.v < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", c.name, *c.v)
		}
	}
	return nil
}

// EngineOptions merges the overrides into the aggregator defaults.
func (c *Config) EngineOptions() aggregator.Options {
	opts := aggregator.DefaultOptions()
	e := c.Engine
	setFloat(&opts.QuartileFraction, e.QuartileFraction)
	setInt(&opts.RecentCount, e.RecentCount)
	setInt(&opts.TopTagCount, e.TopTagCount)
	setInt(&opts.SampleSize, e.SampleSize)
	setInt(&opts.CaptionMaxLength, e.CaptionMaxLength)
	setFloat(&opts.MissingMetricsWarnRatio, e.MissingMetricsWarnRatio)
	setFloat(&opts.ManualIncompleteWarnRatio, e.ManualIncompleteWarnRatio)
	// validated in Load
	if loc, err := time.LoadLocation(c.PostingTimezone); err == nil {
		opts.Location = loc
	}
	return opts
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
