package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "any scheme word", header: "Token abc", wantToken: "abc"},
		{name: "double space", header: "Bearer  abc", wantToken: "abc"},
		{name: "scheme only", header: "Bearer", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "scheme and trailing space", header: "Bearer ", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer a b", wantErr: utils.ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantKind      models.ErrorKind
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantKind: models.ErrorKindMissingCredentials},
		{name: "no token", authorization: "Bearer", wantStatus: http.StatusUnauthorized, wantKind: models.ErrorKindMissingCredentials},
		{name: "garbage token", authorization: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantKind: models.ErrorKindInvalidCredentials},
		{name: "expired token", authorization: expiredBearer(t, airlineClaims), wantStatus: http.StatusUnauthorized, wantKind: models.ErrorKindExpired},
		{name: "tampered token", authorization: bearer(t, airlineClaims) + "x", wantStatus: http.StatusUnauthorized, wantKind: models.ErrorKindInvalidCredentials},
		{name: "valid token", authorization: bearer(t, airlineClaims), wantStatus: http.StatusOK},
		{name: "extra whitespace after scheme", authorization: strings.Replace(bearer(t, airlineClaims), " ", "  ", 1), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utils.GetClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/flights/my-flights", nil))
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()
			h.authenticate(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeEnvelope(t, rec).Kind)
				return
			}
			assert.Equal(t, airlineClaims.ID, got.ID)
			assert.Equal(t, models.RoleAirline, got.Role)
			assert.Equal(t, "SkyJet", got.Name)
		})
	}
}

// withClaims builds a request that already went through authenticate.
func withClaims(r *http.Request, claims models.Claims) *http.Request {
	return injectNopLogger(r.WithContext(utils.WithClaims(r.Context(), claims)))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(contextWithRoute(r, rctx))
}

func TestRequireRole(t *testing.T) {
	h, _ := newTestHandler(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("matching role passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), travelerClaims)
		h.requireRole(models.RoleTraveler)(ok).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), travelerClaims)
		h.requireRole(models.RoleAirline)(ok).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, models.ErrorKindForbidden, decodeEnvelope(t, rec).Kind)
	})

	t.Run("no claims is a server error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
		h.requireRole(models.RoleAirline)(ok).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireSelf(t *testing.T) {
	h, _ := newTestHandler(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		param      string
		wantStatus int
	}{
		{"same id", "5", http.StatusOK},
		{"same id with leading zeros", "005", http.StatusOK},
		{"other id", "6", http.StatusForbidden},
		{"non-numeric id", "abc", http.StatusBadRequest},
		{"negative id", "-5", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), travelerClaims)
			req = withURLParam(req, "userId", tt.param)
			rec := httptest.NewRecorder()

			h.requireSelf("userId")(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireFlightOwner(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		setup      func(ts *testServices)
		wantStatus int
		wantKind   models.ErrorKind
	}{
		{
			name:  "owner passes and flight is in context",
			param: "7",
			setup: func(ts *testServices) {
				ts.flight.EXPECT().GetFlight(gomock.Any(), int64(7)).
					Return(models.Flight{ID: 7, AirlineID: airlineClaims.ID, FlightNumber: "SJ7"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "other airline is forbidden",
			param: "7",
			setup: func(ts *testServices) {
				ts.flight.EXPECT().GetFlight(gomock.Any(), int64(7)).
					Return(models.Flight{ID: 7, AirlineID: 99}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantKind:   models.ErrorKindForbidden,
		},
		{
			name:  "missing flight",
			param: "7",
			setup: func(ts *testServices) {
				ts.flight.EXPECT().GetFlight(gomock.Any(), int64(7)).Return(models.Flight{}, store.ErrFlightNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantKind:   models.ErrorKindNotFound,
		},
		{
			name:       "invalid id does not hit the store",
			param:      "x7",
			setup:      func(ts *testServices) {},
			wantStatus: http.StatusBadRequest,
			wantKind:   models.ErrorKindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			tt.setup(ts)

			var got models.Flight
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utils.GetFlightFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := withClaims(httptest.NewRequest(http.MethodPut, "/", nil), airlineClaims)
			req = withURLParam(req, "id", tt.param)
			rec := httptest.NewRecorder()
			h.requireFlightOwner("id")(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeEnvelope(t, rec).Kind)
				return
			}
			assert.Equal(t, "SJ7", got.FlightNumber)
		})
	}
}
