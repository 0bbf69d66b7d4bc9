package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/models"
)

// flightService converts validated input into flights and delegates to the
// repository. Input validation lives in [FlightValidationService].
type flightService struct {
	flightRepository store.FlightRepository
	logger           *logger.Logger
}

func NewFlightService(flightRepository store.FlightRepository, logger *logger.Logger) FlightService {
	return &flightService{
		flightRepository: flightRepository,
		logger:           logger,
	}
}

func (s *flightService) CreateFlight(ctx context.Context, airlineID int64, input models.FlightInput) (models.Flight, error) {
	flight, err := input.ToFlight(airlineID)
	if err != nil {
		return models.Flight{}, fmt.Errorf("error converting flight input: %w", err)
	}

	return s.flightRepository.CreateFlight(ctx, flight)
}

func (s *flightService) GetFlight(ctx context.Context, id int64) (models.Flight, error) {
	return s.flightRepository.GetFlight(ctx, id)
}

func (s *flightService) GetPublicFlight(ctx context.Context, id int64) (models.PublicFlight, error) {
	return s.flightRepository.GetPublicFlight(ctx, id)
}

func (s *flightService) ListFlights(ctx context.Context, filter models.FlightFilter) ([]models.PublicFlight, error) {
	return s.flightRepository.ListPublicFlights(ctx, filter)
}

func (s *flightService) ListAirlineFlights(ctx context.Context, airlineID int64) ([]models.Flight, error) {
	return s.flightRepository.ListAirlineFlights(ctx, airlineID)
}

func (s *flightService) UpdateFlight(ctx context.Context, current models.Flight, input models.FlightInput) (models.Flight, error) {
	flight, err := input.ToFlight(current.AirlineID)
	if err != nil {
		return models.Flight{}, fmt.Errorf("error converting flight input: %w", err)
	}
	flight.ID = current.ID

	return s.flightRepository.UpdateFlight(ctx, flight)
}

func (s *flightService) DeleteFlight(ctx context.Context, id, airlineID int64) (int64, error) {
	removed, err := s.flightRepository.DeleteFlight(ctx, id, airlineID)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Int64("flight_id", id).
		Int64("airline_id", airlineID).
		Int64("removed_bookings", removed).
		Msg("flight deleted")
	return removed, nil
}
