// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validFlightInput() models.FlightInput {
	return models.FlightInput{
		FromCountry:    "US",
		ToCountry:      "UK",
		FromCity:       "New York",
		ToCity:         "London",
		DepartureTime:  "2026-05-01T10:00:00Z",
		ArrivalTime:    "2026-05-01T22:00:00Z",
		Price:          models.NewFlexNumber(499),
		FlightNumber:   "UA1",
		SeatsAvailable: models.NewFlexNumber(120),
	}
}

func validBookingInput() models.BookingInput {
	return models.BookingInput{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		PassportNumber: "X123",
		Nationality:    "UK",
		Age:            models.NewFlexNumber(36),
	}
}

// ---------------------------------------------------------------------------
// FlightValidator
// ---------------------------------------------------------------------------

func TestFlightValidator_Valid(t *testing.T) {
	v := NewFlightValidator()
	in := validFlightInput()

	assert.NoError(t, v.Validate(context.Background(), in))
	assert.NoError(t, v.Validate(context.Background(), &in))
}

func TestFlightValidator_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.FlightInput)
		wantErr error
	}{
		{"empty from_country", func(in *models.FlightInput) { in.FromCountry = "  " }, ErrEmptyFromCountry},
		{"empty to_country", func(in *models.FlightInput) { in.ToCountry = "" }, ErrEmptyToCountry},
		{"empty from_city", func(in *models.FlightInput) { in.FromCity = "" }, ErrEmptyFromCity},
		{"empty to_city", func(in *models.FlightInput) { in.ToCity = "" }, ErrEmptyToCity},
		{"bad departure", func(in *models.FlightInput) { in.DepartureTime = "soon" }, ErrInvalidDepartureTime},
		{"missing arrival", func(in *models.FlightInput) { in.ArrivalTime = "" }, ErrInvalidArrivalTime},
		{"missing price", func(in *models.FlightInput) { in.Price = models.FlexNumber{} }, ErrInvalidPrice},
		{"zero price", func(in *models.FlightInput) { in.Price = models.NewFlexNumber(0) }, ErrInvalidPrice},
		{"empty flight number", func(in *models.FlightInput) { in.FlightNumber = "" }, ErrEmptyFlightNumber},
		{"negative baggage", func(in *models.FlightInput) { in.Baggage = models.NewFlexNumber(-1) }, ErrInvalidBaggage},
		{"missing seats", func(in *models.FlightInput) { in.SeatsAvailable = models.FlexNumber{} }, ErrInvalidSeats},
		{"negative seats", func(in *models.FlightInput) { in.SeatsAvailable = models.NewFlexNumber(-5) }, ErrInvalidSeats},
		{"price above column range", func(in *models.FlightInput) { in.Price = models.NewFlexNumber(1e10) }, ErrInvalidPrice},
		{"fractional baggage", func(in *models.FlightInput) { in.Baggage = models.NewFlexNumber(1.5) }, ErrInvalidBaggage},
		{"fractional seats", func(in *models.FlightInput) { in.SeatsAvailable = models.NewFlexNumber(10.2) }, ErrInvalidSeats},
		{"seats above integer range", func(in *models.FlightInput) { in.SeatsAvailable = models.NewFlexNumber(1e12) }, ErrInvalidSeats},
	}

	v := NewFlightValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validFlightInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFlightInput_NonFiniteNumbersRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"NaN price", `{"price":"NaN","seats_available":1}`},
		{"infinite baggage", `{"price":10,"baggage":"Inf","seats_available":1}`},
		{"infinite seats", `{"price":10,"seats_available":"-Infinity"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in models.FlightInput
			err := json.Unmarshal([]byte(tt.body), &in)
			assert.ErrorIs(t, err, models.ErrNotANumber)
		})
	}
}

func TestFlightValidator_ZeroSeatsAndOmittedOptionals(t *testing.T) {
	in := validFlightInput()
	in.SeatsAvailable = models.NewFlexNumber(0)
	in.Baggage = models.FlexNumber{}

	assert.NoError(t, NewFlightValidator().Validate(context.Background(), in))
}

func TestFlightValidator_FieldScoping(t *testing.T) {
	in := models.FlightInput{FlightNumber: "UA1"}
	v := NewFlightValidator()

	assert.NoError(t, v.Validate(context.Background(), in, FieldFlightNumber))
	assert.ErrorIs(t, v.Validate(context.Background(), in, FieldFlightNumber, FieldPrice), ErrInvalidPrice)
	assert.ErrorIs(t, v.Validate(context.Background(), in, "nope"), ErrUnknownField)
}

func TestFlightValidator_UnsupportedType(t *testing.T) {
	v := NewFlightValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "flight"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.FlightInput)(nil)), ErrUnsupportedType)
	assert.NotErrorIs(t, v.Validate(context.Background(), 42), ErrValidation)
}

// ---------------------------------------------------------------------------
// BookingValidator
// ---------------------------------------------------------------------------

func TestBookingValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.BookingInput)
		wantErr error
	}{
		{"valid", func(in *models.BookingInput) {}, nil},
		{"valid with contact", func(in *models.BookingInput) { in.Email = "ada@example.com"; in.Phone = "+44" }, nil},
		{"empty first name", func(in *models.BookingInput) { in.FirstName = "" }, ErrEmptyFirstName},
		{"empty last name", func(in *models.BookingInput) { in.LastName = " " }, ErrEmptyLastName},
		{"empty passport", func(in *models.BookingInput) { in.PassportNumber = "" }, ErrEmptyPassportNumber},
		{"empty nationality", func(in *models.BookingInput) { in.Nationality = "" }, ErrEmptyNationality},
		{"missing age", func(in *models.BookingInput) { in.Age = models.FlexNumber{} }, ErrInvalidAge},
		{"zero age", func(in *models.BookingInput) { in.Age = models.NewFlexNumber(0) }, ErrInvalidAge},
		{"fractional age", func(in *models.BookingInput) { in.Age = models.NewFlexNumber(0.5) }, ErrInvalidAge},
		{"age above integer range", func(in *models.BookingInput) { in.Age = models.NewFlexNumber(1e12) }, ErrInvalidAge},
		{"bad email", func(in *models.BookingInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
	}

	v := NewBookingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBookingInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), &in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBookingValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewBookingValidator().Validate(context.Background(), validFlightInput()), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// AccountValidator
// ---------------------------------------------------------------------------

func TestAccountValidator_Airline(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Airline{EmployeeUsername: "ual1", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Airline{Password: "p"}), ErrEmptyEmployeeUsername)
	assert.ErrorIs(t, v.Validate(ctx, &models.Airline{EmployeeUsername: "ual1"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.Airline{EmployeeUsername: "ual1", Password: "p", Email: "bad"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Airline{EmployeeUsername: "ual1", Password: strings.Repeat("x", 73)}), ErrPasswordTooLong)
}

func TestAccountValidator_Traveler(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Traveler{Username: "alice", Password: "pw", Email: "alice@example.com"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Traveler{Password: "pw"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.Traveler{Username: "alice"}), ErrEmptyPassword)
}

func TestAccountValidator_SignIn(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	traveler := models.SignInRequest{Username: "alice", Password: "pw"}
	airline := models.SignInRequest{EmployeeUsername: "ual1", Password: "pw"}

	assert.NoError(t, v.Validate(ctx, traveler))
	assert.NoError(t, v.Validate(ctx, airline, FieldEmployeeUsername, FieldPassword))
	assert.ErrorIs(t, v.Validate(ctx, airline), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, &models.SignInRequest{Username: "alice"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, traveler, FieldEmail), ErrUnknownField)
}

func TestAccountValidator_ProfileUpdate(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Username: "alice"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Email: "alice@example.com"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, &models.ProfileUpdate{Username: "alice", Email: "@@"}), ErrInvalidEmail)
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewAccountValidator().Validate(context.Background(), validBookingInput()), ErrUnsupportedType)
}

func TestFieldError_Message(t *testing.T) {
	assert.Equal(t, "price is required and must be a positive number", ErrInvalidPrice.Error())
}
