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


package match

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrTopicRepositoryRequired is returned when a topic repository is not provided.
	ErrTopicRepositoryRequired = errors.New("topic repository required")

	// ErrEmbeddingRepositoryRequired is returned when an embedding repository is not provided.
	ErrEmbeddingRepositoryRequired = errors.New("embedding repository required")

	// ErrIncompleteProfile is returned when a requester has no declared topics
	// and therefore cannot be rule-matched.
	ErrIncompleteProfile = errors.New("requester profile has no topics")

	// ErrIneligibleProfile is returned when the requester is not eligible for matching.
	ErrIneligibleProfile = errors.New("requester profile is not eligible for matching")

	// ErrEmbeddingUnavailable is returned when no embedding exists for the
	// requester at the current model version.
	ErrEmbeddingUnavailable = errors.New("requester embedding unavailable")
)
