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


// Package analytics summarizes the feedback ledger and impression log.
//
// The Aggregator recomputes metrics from a full scan on every request.
// There is no materialized state to invalidate: the ledger is the single
// source of truth, and at the volumes a matching deployment sees, the scan
// is cheap compared to the complexity of keeping counters in sync with
// upserts.
package analytics
