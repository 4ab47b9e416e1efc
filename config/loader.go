package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MATCHWIRE_CONFIG is set
//  3. env (prefix MATCHWIRE_)
func Load() (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MATCHWIRE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MATCHWIRE_DATA_DIR, MATCHWIRE_AI_HOST, ...
	// Map env keys like MATCHWIRE_DATA_DIR -> data_dir (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MATCHWIRE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "matchwire_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" && !c.InMemory {
		return errors.New("data_dir must not be empty unless in_memory is set")
	}
	if c.MaxCandidates < 1 {
		return errors.New("max_candidates must be positive")
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return errors.New("min_similarity must be in [0,1]")
	}
	if c.InsightTimeoutMS < 1 {
		return errors.New("insight_timeout_ms must be positive")
	}
	if c.ModelVersion == "" {
		return errors.New("model_version must not be empty")
	}
	return nil
}
