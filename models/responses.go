package models

// ErrorKind is the discriminator of the error envelope returned by every
// failing request.
type ErrorKind string

const (
	ErrorKindMissingCredentials ErrorKind = "missing_credentials"
	ErrorKindInvalidCredentials ErrorKind = "invalid_credentials"
	ErrorKindExpired            ErrorKind = "expired"
	ErrorKindForbidden          ErrorKind = "forbidden"
	ErrorKindNotFound           ErrorKind = "not_found"
	ErrorKindConflict           ErrorKind = "conflict"
	ErrorKindValidation         ErrorKind = "validation_error"
	ErrorKindStorage            ErrorKind = "storage_error"
)

// ErrorBody is the inner object of [ErrorResponse].
type ErrorBody struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ErrorResponse is the single error envelope of the API:
//
//	{"error": {"kind": "not_found", "message": "flight not found"}}
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// TokenResponse is returned by the sign-up and sign-in endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is returned by endpoints that have no row to return,
// such as deletions.
type MessageResponse struct {
	Message string `json:"message"`
}

// AirlineResponse wraps an airline profile.
type AirlineResponse struct {
	Airline Airline `json:"airline"`
}

// TravelerResponse wraps a traveler profile.
type TravelerResponse struct {
	User Traveler `json:"user"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
