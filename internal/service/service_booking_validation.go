package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/validators"
	"github.com/MKhiriev/go-flight-booking/models"
)

// BookingValidationService checks passenger details before they reach the
// wrapped BookingService.
type BookingValidationService struct {
	inner     BookingService
	validator validators.Validator
}

func NewBookingValidationService() BookingServiceWrapper {
	return &BookingValidationService{
		validator: validators.NewBookingValidator(),
	}
}

func (v *BookingValidationService) CreateBooking(ctx context.Context, userID, flightID int64, input models.BookingInput) (models.Booking, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Booking{}, fmt.Errorf("error during booking validation before saving: %w", err)
	}

	return v.inner.CreateBooking(ctx, userID, flightID, input)
}

func (v *BookingValidationService) ListTravelerBookings(ctx context.Context, userID int64) ([]models.TravelerBooking, error) {
	return v.inner.ListTravelerBookings(ctx, userID)
}

func (v *BookingValidationService) DeleteBooking(ctx context.Context, id, userID int64) (models.Booking, error) {
	return v.inner.DeleteBooking(ctx, id, userID)
}

func (v *BookingValidationService) ListAirlineBookings(ctx context.Context, airlineID, flightID int64) ([]models.AirlineBooking, error) {
	return v.inner.ListAirlineBookings(ctx, airlineID, flightID)
}

func (v *BookingValidationService) Wrap(wrapped BookingService) BookingService {
	v.inner = wrapped
	return v
}
