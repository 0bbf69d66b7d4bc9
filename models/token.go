package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by a signed token: the account id, its
// role and a denormalized profile snapshot taken at issuance time.
//
// It embeds [jwt.RegisteredClaims] for the standard iss/sub/exp/iat set.
// The snapshot is not refreshed when the profile changes; it lives until
// the token expires.
type Claims struct {
	// ID is the account id inside the table selected by Role.
	ID int64 `json:"id"`

	// Role selects the account table (airlines or users).
	Role Role `json:"role"`

	// Username is set for traveler tokens.
	Username string `json:"username,omitempty"`

	// EmployeeUsername is set for airline tokens.
	EmployeeUsername string `json:"employee_username,omitempty"`

	// Name is the airline name, set for airline tokens.
	Name string `json:"name,omitempty"`

	jwt.RegisteredClaims
}

// Token is a freshly issued signed token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"token"`

	// ExpiresAt is the moment the token stops verifying.
	ExpiresAt time.Time `json:"expires_at"`

	// Claims is the payload the token was signed over.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
