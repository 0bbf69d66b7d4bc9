package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/validators"
	"github.com/MKhiriev/go-flight-booking/models"
)

// FlightValidationService checks flight input before it reaches the wrapped
// FlightService. Read operations pass straight through.
type FlightValidationService struct {
	inner     FlightService
	validator validators.Validator
}

func NewFlightValidationService() FlightServiceWrapper {
	return &FlightValidationService{
		validator: validators.NewFlightValidator(),
	}
}

func (v *FlightValidationService) CreateFlight(ctx context.Context, airlineID int64, input models.FlightInput) (models.Flight, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Flight{}, fmt.Errorf("error during flight validation before saving: %w", err)
	}

	return v.inner.CreateFlight(ctx, airlineID, input)
}

func (v *FlightValidationService) GetFlight(ctx context.Context, id int64) (models.Flight, error) {
	return v.inner.GetFlight(ctx, id)
}

func (v *FlightValidationService) GetPublicFlight(ctx context.Context, id int64) (models.PublicFlight, error) {
	return v.inner.GetPublicFlight(ctx, id)
}

func (v *FlightValidationService) ListFlights(ctx context.Context, filter models.FlightFilter) ([]models.PublicFlight, error) {
	return v.inner.ListFlights(ctx, filter)
}

func (v *FlightValidationService) ListAirlineFlights(ctx context.Context, airlineID int64) ([]models.Flight, error) {
	return v.inner.ListAirlineFlights(ctx, airlineID)
}

func (v *FlightValidationService) UpdateFlight(ctx context.Context, current models.Flight, input models.FlightInput) (models.Flight, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Flight{}, fmt.Errorf("error during flight validation before updating: %w", err)
	}

	return v.inner.UpdateFlight(ctx, current, input)
}

func (v *FlightValidationService) DeleteFlight(ctx context.Context, id, airlineID int64) (int64, error) {
	return v.inner.DeleteFlight(ctx, id, airlineID)
}

func (v *FlightValidationService) Wrap(wrapped FlightService) FlightService {
	v.inner = wrapped
	return v
}
