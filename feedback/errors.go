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


package feedback

import "errors"

var (
	// ErrFeedbackRepositoryRequired is returned when a feedback repository is not provided.
	ErrFeedbackRepositoryRequired = errors.New("feedback repository required")

	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrForbidden is returned when a user submits feedback for a requester
	// profile they do not own.
	ErrForbidden = errors.New("feedback requester profile not owned by user")
)
