// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// AdvisorHost is the base URL for the insight/chat service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	AdvisorHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// AdvisorModel is the model identifier to use for match insight.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	AdvisorModel string

	// MinSeverity is the minimum severity score (1-10) for advisor risk flags.
	// Risks with severity below this threshold are filtered out.
	// Default: 4
	MinSeverity int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithAdvisorHost sets the advisor service host URL.
func WithAdvisorHost(host string) ConfigOption {
	return func(c *Config) {
		c.AdvisorHost = host
	}
}

// WithHost sets both embedding and advisor hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.AdvisorHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithAdvisorModel sets the advisor model identifier.
func WithAdvisorModel(model string) ConfigOption {
	return func(c *Config) {
		c.AdvisorModel = model
	}
}

// WithMinSeverity sets the minimum severity threshold for risk flags.
func WithMinSeverity(min int) ConfigOption {
	return func(c *Config) {
		c.MinSeverity = min
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both embedding and advisor use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		AdvisorHost:    defaultHost,
		EmbeddingModel: "embeddinggemma",
		AdvisorModel:   "qwen2.5:3b",
		MinSeverity:    4,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/") + "/v1"
	}
	if c.AdvisorHost != "" && !strings.HasSuffix(c.AdvisorHost, "/v1") {
		c.AdvisorHost = strings.TrimSuffix(c.AdvisorHost, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.AdvisorHost == "" {
		return errors.New("ai config: AdvisorHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.AdvisorModel == "" {
		return errors.New("ai config: AdvisorModel is required")
	}
	if c.MinSeverity < 1 || c.MinSeverity > 10 {
		return errors.New("ai config: MinSeverity must be between 1 and 10")
	}
	return nil
}
