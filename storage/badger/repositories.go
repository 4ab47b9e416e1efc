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


package badger

import "github.com/poiesic/matchwire/storage"

// Repositories bundles every repository backed by one BadgerDB instance.
type Repositories struct {
	Profiles    storage.ProfileRepository
	Topics      storage.TopicRepository
	Embeddings  storage.EmbeddingRepository
	Feedback    storage.FeedbackRepository
	Impressions storage.ImpressionRepository

	backend *Backend
}

// NewRepositories opens a BadgerDB database at path and wires all repositories.
func NewRepositories(path string) (*Repositories, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newRepositories(backend), nil
}

func newRepositories(backend *Backend) *Repositories {
	return &Repositories{
		Profiles:    NewProfileRepository(backend),
		Topics:      NewTopicRepository(backend),
		Embeddings:  NewEmbeddingRepository(backend),
		Feedback:    NewFeedbackRepository(backend),
		Impressions: NewImpressionRepository(backend),
		backend:     backend,
	}
}

// Backend exposes the underlying backend, mainly for lifecycle management.
func (r *Repositories) Backend() *Backend {
	return r.backend
}

// Close closes every repository and the shared backend.
func (r *Repositories) Close() error {
	if err := r.Profiles.Close(); err != nil {
		return err
	}
	if err := r.Topics.Close(); err != nil {
		return err
	}
	if err := r.Embeddings.Close(); err != nil {
		return err
	}
	if err := r.Feedback.Close(); err != nil {
		return err
	}
	if err := r.Impressions.Close(); err != nil {
		return err
	}
	return r.backend.Close()
}
