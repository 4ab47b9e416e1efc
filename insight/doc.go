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


// Package insight enriches match candidates with advisory LLM assessments.
//
// The Service type wraps an ai.InsightAdvisor with a per-call timeout and a
// worker pool for batch enrichment. Insight is strictly advisory: when the
// advisor fails or times out, the service returns a degraded result that
// falls back to the candidate's deterministic explanation instead of
// propagating the failure. A slow or unreachable model therefore never
// blocks match delivery.
package insight
