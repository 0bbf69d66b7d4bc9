// Package http implements the REST transport of the flight booking API.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, compression, authentication and the role, self and flight
// ownership checks run in this package before requests are delegated to the
// service layer. Every failure is written as the single error envelope
// produced by writeError.
package http
