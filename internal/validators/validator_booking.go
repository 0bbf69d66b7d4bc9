package validators

import (
	"context"

	"github.com/MKhiriev/go-flight-booking/models"
)

// BookingValidator checks passenger details of a new booking.
type BookingValidator struct {
}

func NewBookingValidator() Validator {
	return &BookingValidator{}
}

func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookingInput:
		return v.validateBookingInput(ctx, value, fields...)
	case *models.BookingInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBookingInput(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookingValidator) validateBookingInput(_ context.Context, in models.BookingInput, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultBookingFields
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if isBlank(in.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if isBlank(in.LastName) {
				return ErrEmptyLastName
			}
		case FieldPassportNumber:
			if isBlank(in.PassportNumber) {
				return ErrEmptyPassportNumber
			}
		case FieldNationality:
			if isBlank(in.Nationality) {
				return ErrEmptyNationality
			}
		case FieldAge:
			if !in.Age.Set || in.Age.Value <= 0 || !in.Age.IsInt32() {
				return ErrInvalidAge
			}
		case FieldEmail:
			if err := validateOptionalEmail(in.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
