package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/mock"
	"github.com/MKhiriev/go-flight-booking/internal/service"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-flight-booking-test"
)

var (
	airlineClaims  = models.Claims{ID: 2, Role: models.RoleAirline, EmployeeUsername: "ops", Name: "SkyJet"}
	travelerClaims = models.Claims{ID: 5, Role: models.RoleTraveler, Username: "bob"}
)

// testServices holds the gomock services behind a Handler. TokenService is
// the real implementation so that tokens are signed and verified for real.
type testServices struct {
	auth     *mock.MockAuthService
	airline  *mock.MockAirlineService
	traveler *mock.MockTravelerService
	flight   *mock.MockFlightService
	booking  *mock.MockBookingService
	appInfo  *mock.MockAppInfoService

	services *service.Services
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:     mock.NewMockAuthService(ctrl),
		airline:  mock.NewMockAirlineService(ctrl),
		traveler: mock.NewMockTravelerService(ctrl),
		flight:   mock.NewMockFlightService(ctrl),
		booking:  mock.NewMockBookingService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	ts.services = &service.Services{
		TokenService: service.NewTokenService(config.App{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
		}, logger.Nop()),
		AuthService:     ts.auth,
		AirlineService:  ts.airline,
		TravelerService: ts.traveler,
		FlightService:   ts.flight,
		BookingService:  ts.booking,
		AppInfoService:  ts.appInfo,
	}
	return ts
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ts := newTestServices(t)
	return &Handler{services: ts.services, logger: logger.Nop()}, ts
}

func newTestRouter(t *testing.T) (*chi.Mux, *testServices) {
	t.Helper()
	h, ts := newTestHandler(t)
	return h.Init(), ts
}

func issueTestToken(t *testing.T, claims models.Claims) models.Token {
	t.Helper()
	token, err := utils.IssueToken(claims, testIssuer, testSignKey, time.Hour)
	require.NoError(t, err)
	return token
}

func bearer(t *testing.T, claims models.Claims) string {
	t.Helper()
	return "Bearer " + issueTestToken(t, claims).SignedString
}

// expiredBearer signs claims with the right key and issuer but an exp in
// the past.
func expiredBearer(t *testing.T, claims models.Claims) string {
	t.Helper()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(router http.Handler, method, path, authorization string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorBody {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Error
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

func contextWithRoute(r *http.Request, rctx *chi.Context) context.Context {
	return context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
}

func newRequest(method, path string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, path, body)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
