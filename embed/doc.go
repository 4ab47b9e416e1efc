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


// Package embed maintains the profile embedding cache.
//
// The Pipeline walks stored profiles, renders each one to a source text
// (name, description, declared topic names), and stores the resulting
// vector tagged with the configured model version. Profiles whose cached
// embedding already carries the current version are skipped, so a refresh
// after a model upgrade re-embeds everything while a routine refresh is
// close to free. Embedding work runs on a worker pool; a failure for one
// profile is logged and never aborts the rest of the run.
package embed
