// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header does not
	// carry a token after the scheme word.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Access guard and routing errors.
var (
	// ErrForbidden is returned when the authenticated identity may not
	// access the resource: wrong role, another account, or another
	// airline's flight.
	ErrForbidden = errors.New("access denied")

	// ErrNoClaimsInContext means a protected handler was mounted without the
	// authenticate middleware.
	ErrNoClaimsInContext = errors.New("no identity in request context")
	// ErrNoFlightInContext means a flight handler was mounted without the
	// requireFlightOwner middleware.
	ErrNoFlightInContext = errors.New("no flight in request context")

	ErrRouteNotFound = errors.New("route not found")

	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam  = errors.New("invalid query parameter")
	ErrInvalidPhotoUpload = errors.New("a multipart form with a `photo` file is required")
	ErrInvalidGzipBody    = errors.New("invalid gzip data")
	ErrBodyTooLarge       = errors.New("request body is too large")
)
