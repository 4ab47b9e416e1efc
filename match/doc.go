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


// Package match produces ranked introduction candidates for a requester profile.
//
// The Matcher type implements two independent strategies:
//   - Rule matching based on declared topic overlap
//   - Similarity matching based on cosine similarity of profile embeddings
//
// Both strategies consider only eligible counterpart profiles, attach a
// human-readable explanation to every candidate, and return results ranked
// by score. Neither strategy calls an AI service at match time; similarity
// works entirely from embeddings already in the store.
package match
