package service

import (
	"context"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/models"
)

type bookingService struct {
	bookingRepository store.BookingRepository
	flightRepository  store.FlightRepository
	logger            *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, flightRepository store.FlightRepository, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		flightRepository:  flightRepository,
		logger:            logger,
	}
}

// CreateBooking books flightID for userID. A missing flight yields
// store.ErrFlightNotFound before anything is written.
func (s *bookingService) CreateBooking(ctx context.Context, userID, flightID int64, input models.BookingInput) (models.Booking, error) {
	if _, err := s.flightRepository.GetFlight(ctx, flightID); err != nil {
		return models.Booking{}, err
	}

	return s.bookingRepository.CreateBooking(ctx, input.ToBooking(userID, flightID))
}

func (s *bookingService) ListTravelerBookings(ctx context.Context, userID int64) ([]models.TravelerBooking, error) {
	return s.bookingRepository.ListTravelerBookings(ctx, userID)
}

func (s *bookingService) DeleteBooking(ctx context.Context, id, userID int64) (models.Booking, error) {
	return s.bookingRepository.DeleteBooking(ctx, id, userID)
}

func (s *bookingService) ListAirlineBookings(ctx context.Context, airlineID, flightID int64) ([]models.AirlineBooking, error) {
	return s.bookingRepository.ListAirlineBookings(ctx, airlineID, flightID)
}
