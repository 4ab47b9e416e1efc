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


package storage

import (
	"github.com/poiesic/matchwire/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalTopic serializes a Topic to bytes.
func MarshalTopic(topic *core.Topic) []byte {
	buf := make([]byte, core.TopicMUS.Size(*topic))
	core.TopicMUS.Marshal(*topic, buf)
	return buf
}

// UnmarshalTopic deserializes a Topic from bytes.
func UnmarshalTopic(data []byte) (*core.Topic, error) {
	topic, _, err := core.TopicMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// MarshalProfile serializes a Profile to bytes.
func MarshalProfile(profile *core.Profile) []byte {
	buf := make([]byte, core.ProfileMUS.Size(*profile))
	core.ProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a Profile from bytes.
func UnmarshalProfile(data []byte) (*core.Profile, error) {
	profile, _, err := core.ProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MarshalEmbedding serializes a ProfileEmbedding to bytes.
func MarshalEmbedding(embedding *core.ProfileEmbedding) []byte {
	buf := make([]byte, core.ProfileEmbeddingMUS.Size(*embedding))
	core.ProfileEmbeddingMUS.Marshal(*embedding, buf)
	return buf
}

// UnmarshalEmbedding deserializes a ProfileEmbedding from bytes.
func UnmarshalEmbedding(data []byte) (*core.ProfileEmbedding, error) {
	embedding, _, err := core.ProfileEmbeddingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &embedding, nil
}

// MarshalFeedback serializes a MatchFeedback to bytes.
func MarshalFeedback(feedback *core.MatchFeedback) []byte {
	buf := make([]byte, core.MatchFeedbackMUS.Size(*feedback))
	core.MatchFeedbackMUS.Marshal(*feedback, buf)
	return buf
}

// UnmarshalFeedback deserializes a MatchFeedback from bytes.
func UnmarshalFeedback(data []byte) (*core.MatchFeedback, error) {
	feedback, _, err := core.MatchFeedbackMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// MarshalImpression serializes a MatchImpression to bytes.
func MarshalImpression(impression *core.MatchImpression) []byte {
	buf := make([]byte, core.MatchImpressionMUS.Size(*impression))
	core.MatchImpressionMUS.Marshal(*impression, buf)
	return buf
}

// UnmarshalImpression deserializes a MatchImpression from bytes.
func UnmarshalImpression(data []byte) (*core.MatchImpression, error) {
	impression, _, err := core.MatchImpressionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &impression, nil
}
