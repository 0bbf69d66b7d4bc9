package http

import (
	"net/http"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/go-chi/chi/v5"
)

// authenticate is an HTTP middleware that enforces bearer token
// authentication.
//
// It reads the "Authorization" header, extracts the token, verifies it via
// [service.TokenService.Verify] and stores the decoded [models.Claims] in the
// request context under [utils.ClaimsCtxKey].
//
// The request is rejected with 401 Unauthorized when:
//   - the header is absent or carries no token (missing_credentials);
//   - the token is expired (expired);
//   - the token is tampered, signed with another key or malformed
//     (invalid_credentials).
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().
			Int64("id", claims.ID).
			Str("role", claims.Role.String()).
			Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", err
	}
	if tokenString == "" {
		return "", ErrEmptyToken
	}
	return tokenString, nil
}

// requireRole rejects authenticated requests whose role differs from role.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoClaimsInContext)
				return
			}
			if claims.Role != role {
				writeError(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireSelf rejects requests whose path parameter param is not the
// caller's own account id. Ids are compared as numbers, so "007" matches 7.
func (h *Handler) requireSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoClaimsInContext)
				return
			}

			id, err := utils.ParseID(chi.URLParam(r, param))
			if err != nil {
				writeError(w, r, err)
				return
			}
			if id != claims.ID {
				writeError(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireFlightOwner loads the flight named by the path parameter param and
// rejects the request unless it belongs to the calling airline. The loaded
// flight is stored in the request context under [utils.FlightCtxKey].
func (h *Handler) requireFlightOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			claims, ok := utils.GetClaimsFromContext(ctx)
			if !ok {
				writeError(w, r, ErrNoClaimsInContext)
				return
			}

			id, err := utils.ParseID(chi.URLParam(r, param))
			if err != nil {
				writeError(w, r, err)
				return
			}

			flight, err := h.services.FlightService.GetFlight(ctx, id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if flight.AirlineID != claims.ID {
				logger.FromRequest(r).Warn().
					Int64("flight_id", flight.ID).
					Int64("airline_id", claims.ID).
					Msg("flight belongs to another airline")
				writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithFlight(ctx, flight)))
		})
	}
}

// claimsFromRequest returns the identity stored by authenticate.
func claimsFromRequest(r *http.Request) (models.Claims, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return models.Claims{}, ErrNoClaimsInContext
	}
	return claims, nil
}
