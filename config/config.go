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


// Package config defines process configuration and its loading rules.
//
// Configuration is layered: compiled defaults, then an optional YAML file
// named by MATCHWIRE_CONFIG, then environment variables with the MATCHWIRE_
// prefix. Later layers win.
package config

import (
	"runtime"
	"time"

	"github.com/poiesic/matchwire/ai"
	"github.com/poiesic/matchwire/core"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is where the BadgerDB store lives.
	DataDir string `koanf:"data_dir"`

	// InMemory runs the store without persistence. Useful for demos and tests.
	InMemory bool `koanf:"in_memory"`

	// AIHost is the OpenAI-compatible endpoint for embeddings and insight.
	AIHost string `koanf:"ai_host"`

	// EmbeddingModel identifies the embedding model.
	EmbeddingModel string `koanf:"embedding_model"`

	// AdvisorModel identifies the chat model used for match insight.
	AdvisorModel string `koanf:"advisor_model"`

	// ModelVersion tags stored embeddings. Bump it when changing
	// EmbeddingModel so matching ignores vectors from the old model.
	ModelVersion string `koanf:"model_version"`

	// MockAI replaces the live AI provider with deterministic test doubles.
	MockAI bool `koanf:"mock_ai"`

	// MinSeverity filters advisor risk flags below this score (1-10).
	MinSeverity int `koanf:"min_severity"`

	// MaxCandidates caps how many candidates a match request returns.
	MaxCandidates int `koanf:"max_candidates"`

	// MinSimilarity is the floor for similarity matches, in [0,1].
	MinSimilarity float64 `koanf:"min_similarity"`

	// InsightTimeoutMS bounds a single advisor call in milliseconds.
	InsightTimeoutMS int `koanf:"insight_timeout_ms"`

	// WorkerCount sets the worker pool size for embedding and insight work.
	WorkerCount int `koanf:"worker_count"`
}

// New creates a Config populated with defaults.
func New() *Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}

	return &Config{
		LogLevel:         "info",
		DataDir:          "./matchwire-data",
		AIHost:           "http://localhost:11434/v1",
		EmbeddingModel:   "embeddinggemma",
		AdvisorModel:     "qwen2.5:3b",
		ModelVersion:     core.DefaultModelVersion,
		MinSeverity:      4,
		MaxCandidates:    20,
		MinSimilarity:    0.3,
		InsightTimeoutMS: 10_000,
		WorkerCount:      workers,
	}
}

// AIConfig projects the AI-facing fields into an ai.Config.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.AIHost),
		ai.WithEmbeddingModel(c.EmbeddingModel),
		ai.WithAdvisorModel(c.AdvisorModel),
		ai.WithMinSeverity(c.MinSeverity),
	)
}

// InsightTimeout returns the advisor call bound as a duration.
func (c *Config) InsightTimeout() time.Duration {
	return time.Duration(c.InsightTimeoutMS) * time.Millisecond
}
