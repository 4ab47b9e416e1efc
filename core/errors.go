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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidTopic indicates a Topic failed validation.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrInvalidFeedback indicates a MatchFeedback failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback")

	// ErrInvalidRole indicates an invalid Role value.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidOutcome indicates an invalid Outcome value.
	ErrInvalidOutcome = errors.New("invalid outcome")

	// ErrInvalidMatchKind indicates an invalid MatchKind value.
	ErrInvalidMatchKind = errors.New("invalid match kind")

	// ErrEmptyName indicates a required Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyTopicName indicates the topic Name field is empty.
	ErrEmptyTopicName = errors.New("topic name cannot be empty")

	// ErrEmptyTopicCategory indicates the topic Category field is empty.
	ErrEmptyTopicCategory = errors.New("topic category cannot be empty")

	// ErrDuplicateTopicId indicates a profile lists the same topic twice.
	ErrDuplicateTopicId = errors.New("duplicate topic id")

	// ErrMissingParty indicates a feedback record lacks a party identifier.
	ErrMissingParty = errors.New("feedback must reference user, requester, and candidate")
)
