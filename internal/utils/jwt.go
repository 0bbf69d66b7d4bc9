package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed is returned when the token is not a well-formed JWS
	// or carries claims that fail validation.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenInvalidSignature is returned when the signature does not match
	// or the algorithm is not HS256.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	// ErrTokenExpired is returned when the token's exp is in the past.
	ErrTokenExpired = errors.New("token is expired")
	// ErrInvalidTokenParams is returned by IssueToken on empty inputs.
	ErrInvalidTokenParams = errors.New("invalid params for issuing token")
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is not of the form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// IssueToken creates a signed HMAC-SHA256 token carrying claims.
//
// The registered claims are filled as follows:
//   - Issuer    (iss): issuer
//   - Subject   (sub): claims.ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + ttl
//
// Example usage:
//
//	token, err := utils.IssueToken(airline.Claims(), "go-flight-booking", "secret", 168*time.Hour)
func IssueToken(claims models.Claims, issuer, signKey string, ttl time.Duration) (models.Token, error) {
	if issuer == "" || signKey == "" || ttl <= 0 {
		return models.Token{}, ErrInvalidTokenParams
	}
	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidTokenParams, models.ErrUnknownRole)
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(claims.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		ExpiresAt:    claims.ExpiresAt.Time,
		Claims:       claims,
	}, nil
}

// VerifyToken validates tokenString and returns the claims it carries.
//
// Validation includes the HMAC signature, the issuer and the expiration.
// Failures are reported as one of ErrTokenMalformed, ErrTokenInvalidSignature
// or ErrTokenExpired, wrapping the underlying jwt error.
func VerifyToken(tokenString, signKey, issuer string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
		default:
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	if !claims.Role.Valid() || claims.ID <= 0 {
		return models.Claims{}, ErrTokenMalformed
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// The scheme word is not checked: "Bearer <t>" and "<anything> <t>" are both
// accepted, a header with no whitespace is not. Runs of whitespace between
// the scheme and the token count as one separator.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
