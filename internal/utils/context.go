// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, token issuing and verification, and
// other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-flight-booking/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey is the key under which the authenticate middleware stores
	// the verified [models.Claims].
	ClaimsCtxKey = contextKey("claims")

	// FlightCtxKey is the key under which the flight ownership middleware
	// stores the loaded [models.Flight].
	FlightCtxKey = contextKey("flight")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified identity from the context.
//
// Returns the claims and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	claims, ok := utils.GetClaimsFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithFlight returns a copy of ctx carrying flight.
func WithFlight(ctx context.Context, flight models.Flight) context.Context {
	return context.WithValue(ctx, FlightCtxKey, flight)
}

// GetFlightFromContext retrieves the flight loaded by the ownership check.
func GetFlightFromContext(ctx context.Context) (models.Flight, bool) {
	flight, ok := ctx.Value(FlightCtxKey).(models.Flight)
	return flight, ok
}
