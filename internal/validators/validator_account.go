package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-flight-booking/models"
)

// bcrypt ignores input past this many bytes.
const maxPasswordBytes = 72

// AccountValidator checks sign-up, sign-in and profile payloads of both
// account kinds.
//
// Supported types (value or pointer):
//   - models.Airline       : sign-up of an airline
//   - models.Traveler      : sign-up of a traveler
//   - models.SignInRequest : sign-in; scope with FieldUsername or FieldEmployeeUsername
//   - models.ProfileUpdate : traveler profile replacement
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Airline:
		return v.validateAirline(value, fields...)
	case *models.Airline:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAirline(*value, fields...)
	case models.Traveler:
		return v.validateTraveler(value, fields...)
	case *models.Traveler:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTraveler(*value, fields...)
	case models.SignInRequest:
		return v.validateSignIn(value, fields...)
	case *models.SignInRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSignIn(*value, fields...)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProfileUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAirline(a models.Airline, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmployeeUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmployeeUsername:
			if isBlank(a.EmployeeUsername) {
				return ErrEmptyEmployeeUsername
			}
		case FieldPassword:
			if err := validatePassword(a.Password); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateOptionalEmail(a.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateTraveler(t models.Traveler, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(t.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if err := validatePassword(t.Password); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateOptionalEmail(t.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSignIn(r models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(r.Username) {
				return ErrEmptyUsername
			}
		case FieldEmployeeUsername:
			if isBlank(r.EmployeeUsername) {
				return ErrEmptyEmployeeUsername
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateProfileUpdate(p models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(p.Username) {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if err := validateOptionalEmail(p.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validateOptionalEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
