package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-flight-booking/models"
)

// maxPrice is the largest value a NUMERIC(12, 2) column holds.
const maxPrice = 9999999999.99

// FlightValidator checks flight create and update payloads.
type FlightValidator struct {
}

// NewFlightValidator constructs a FlightValidator and returns it as the
// Validator interface.
func NewFlightValidator() Validator {
	return &FlightValidator{}
}

// Validate accepts models.FlightInput or *models.FlightInput.
// Returns ErrUnsupportedType for anything else.
func (v *FlightValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FlightInput:
		return v.validateFlightInput(ctx, value, fields...)
	case *models.FlightInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFlightInput(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FlightValidator) validateFlightInput(_ context.Context, in models.FlightInput, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFlightFields
	}

	for _, f := range fields {
		switch f {
		case FieldFromCountry:
			if isBlank(in.FromCountry) {
				return ErrEmptyFromCountry
			}
		case FieldToCountry:
			if isBlank(in.ToCountry) {
				return ErrEmptyToCountry
			}
		case FieldFromCity:
			if isBlank(in.FromCity) {
				return ErrEmptyFromCity
			}
		case FieldToCity:
			if isBlank(in.ToCity) {
				return ErrEmptyToCity
			}
		case FieldDepartureTime:
			if _, err := models.ParseTimestamp(in.DepartureTime); err != nil {
				return ErrInvalidDepartureTime
			}
		case FieldArrivalTime:
			if _, err := models.ParseTimestamp(in.ArrivalTime); err != nil {
				return ErrInvalidArrivalTime
			}
		case FieldPrice:
			if !in.Price.Set || in.Price.Value <= 0 || in.Price.Value > maxPrice {
				return ErrInvalidPrice
			}
		case FieldFlightNumber:
			if isBlank(in.FlightNumber) {
				return ErrEmptyFlightNumber
			}
		case FieldBaggage:
			if in.Baggage.Set && (in.Baggage.Value < 0 || !in.Baggage.IsInt32()) {
				return ErrInvalidBaggage
			}
		case FieldSeatsAvailable:
			if !in.SeatsAvailable.Set || in.SeatsAvailable.Value < 0 || !in.SeatsAvailable.IsInt32() {
				return ErrInvalidSeats
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
