// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads before
// they reach the storage layer.
//
// Every validator implements [Validator]. The optional field names passed to
// Validate restrict the check to a subset of fields; with no names a default
// set is checked. All failures unwrap to [ErrValidation].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
