package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-flight-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AirlineRepository persists airline accounts in the "airlines" table.
type AirlineRepository interface {
	CreateAirline(ctx context.Context, airline models.Airline) (models.Airline, error)
	FindAirlineByUsername(ctx context.Context, employeeUsername string) (models.Airline, error)
	FindAirlineByID(ctx context.Context, id int64) (models.Airline, error)
}

// TravelerRepository persists traveler accounts in the "users" table.
type TravelerRepository interface {
	CreateTraveler(ctx context.Context, traveler models.Traveler) (models.Traveler, error)
	FindTravelerByUsername(ctx context.Context, username string) (models.Traveler, error)
	FindTravelerByID(ctx context.Context, id int64) (models.Traveler, error)
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.Traveler, error)
	UpdatePhoto(ctx context.Context, id int64, photo string) (models.Traveler, error)
	// DeleteTraveler removes the account and returns the deleted row.
	// Bookings go with it through ON DELETE CASCADE.
	DeleteTraveler(ctx context.Context, id int64) (models.Traveler, error)
}

// FlightRepository persists flights in the "flights" table.
type FlightRepository interface {
	CreateFlight(ctx context.Context, flight models.Flight) (models.Flight, error)
	GetFlight(ctx context.Context, id int64) (models.Flight, error)
	GetPublicFlight(ctx context.Context, id int64) (models.PublicFlight, error)
	ListPublicFlights(ctx context.Context, filter models.FlightFilter) ([]models.PublicFlight, error)
	ListAirlineFlights(ctx context.Context, airlineID int64) ([]models.Flight, error)
	// UpdateFlight replaces the mutable fields of the flight identified by
	// flight.ID and owned by flight.AirlineID.
	UpdateFlight(ctx context.Context, flight models.Flight) (models.Flight, error)
	// DeleteFlight removes the flight and its bookings in one transaction
	// and returns the number of bookings removed.
	DeleteFlight(ctx context.Context, id, airlineID int64) (int64, error)
}

// BookingRepository persists bookings in the "bookings" table.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	ListTravelerBookings(ctx context.Context, userID int64) ([]models.TravelerBooking, error)
	// ListAirlineBookings lists bookings on flights of airlineID. A zero
	// flightID lists every flight of the airline.
	ListAirlineBookings(ctx context.Context, airlineID, flightID int64) ([]models.AirlineBooking, error)
	DeleteBooking(ctx context.Context, id, userID int64) (models.Booking, error)
}

// PhotoStorage keeps uploaded traveler photos outside the database. Only the
// returned name is stored in users.photo.
type PhotoStorage interface {
	// Save writes the content of r under a freshly generated name that keeps
	// the extension of originalName, and returns that name.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Delete removes a stored photo. Removing a missing photo is not an error.
	Delete(ctx context.Context, name string) error
}

// ErrorClassificator decides whether a failed database call is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
