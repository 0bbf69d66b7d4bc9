package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-flight-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed identity claims.
type TokenService interface {
	// Issue signs claims. A zero ttl falls back to the configured duration.
	Issue(ctx context.Context, claims models.Claims, ttl time.Duration) (models.Token, error)
	// Verify checks signature, issuer and expiry and returns the claims.
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

type AuthService interface {
	SignUpAirline(ctx context.Context, airline models.Airline) (models.Token, error)
	SignInAirline(ctx context.Context, request models.SignInRequest) (models.Token, error)
	SignUpTraveler(ctx context.Context, traveler models.Traveler) (models.Token, error)
	SignInTraveler(ctx context.Context, request models.SignInRequest) (models.Token, error)
}

type AirlineService interface {
	GetAirline(ctx context.Context, id int64) (models.Airline, error)
}

type TravelerService interface {
	GetTraveler(ctx context.Context, id int64) (models.Traveler, error)
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.Traveler, error)
	UpdatePhoto(ctx context.Context, id int64, originalName string, photo io.Reader) (models.Traveler, error)
	DeleteTraveler(ctx context.Context, id int64) error
}

type FlightService interface {
	CreateFlight(ctx context.Context, airlineID int64, input models.FlightInput) (models.Flight, error)
	GetFlight(ctx context.Context, id int64) (models.Flight, error)
	GetPublicFlight(ctx context.Context, id int64) (models.PublicFlight, error)
	ListFlights(ctx context.Context, filter models.FlightFilter) ([]models.PublicFlight, error)
	ListAirlineFlights(ctx context.Context, airlineID int64) ([]models.Flight, error)
	// UpdateFlight replaces the mutable fields of current, an already loaded
	// and ownership-checked flight, with input.
	UpdateFlight(ctx context.Context, current models.Flight, input models.FlightInput) (models.Flight, error)
	DeleteFlight(ctx context.Context, id, airlineID int64) (int64, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID, flightID int64, input models.BookingInput) (models.Booking, error)
	ListTravelerBookings(ctx context.Context, userID int64) ([]models.TravelerBooking, error)
	DeleteBooking(ctx context.Context, id, userID int64) (models.Booking, error)
	ListAirlineBookings(ctx context.Context, airlineID, flightID int64) ([]models.AirlineBooking, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
