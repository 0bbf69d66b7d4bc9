package validators

import "errors"

// ErrValidation is the parent of every field error returned by this package.
// Callers map it to a single "validation_error" response kind.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFromCountry     = newValidationError("from_country is required")
	ErrEmptyToCountry       = newValidationError("to_country is required")
	ErrEmptyFromCity        = newValidationError("from_city is required")
	ErrEmptyToCity          = newValidationError("to_city is required")
	ErrInvalidDepartureTime = newValidationError("departure_time is required and must be a valid timestamp")
	ErrInvalidArrivalTime   = newValidationError("arrival_time is required and must be a valid timestamp")
	ErrInvalidPrice         = newValidationError("price is required and must be a positive number")
	ErrEmptyFlightNumber    = newValidationError("flight_number is required")
	ErrInvalidBaggage       = newValidationError("baggage must be a non-negative whole number")
	ErrInvalidSeats         = newValidationError("seats_available is required and must be a non-negative whole number")

	ErrEmptyFirstName      = newValidationError("first_name is required")
	ErrEmptyLastName       = newValidationError("last_name is required")
	ErrEmptyPassportNumber = newValidationError("passport_number is required")
	ErrEmptyNationality    = newValidationError("nationality is required")
	ErrInvalidAge          = newValidationError("age is required and must be a positive whole number")

	ErrEmptyUsername         = newValidationError("username is required")
	ErrEmptyEmployeeUsername = newValidationError("employee_username is required")
	ErrEmptyPassword         = newValidationError("password is required")
	ErrPasswordTooLong       = newValidationError("password must be at most 72 bytes")
	ErrInvalidEmail          = newValidationError("email is not a valid address")
)

// fieldError is a validation failure with a client-facing message.
type fieldError struct {
	msg string
}

func newValidationError(msg string) error {
	return &fieldError{msg: msg}
}

func (e *fieldError) Error() string {
	return e.msg
}

func (e *fieldError) Unwrap() error {
	return ErrValidation
}
