package models

import (
	"strings"
	"time"
)

// Booking is a reservation of one passenger on a flight made by a traveler.
type Booking struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	FlightID       int64     `json:"flight_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
	Age            int       `json:"age"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// BookingInput is the request body of POST /userBooking/{flightId}.
type BookingInput struct {
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	PassportNumber string     `json:"passport_number"`
	Nationality    string     `json:"nationality"`
	Age            FlexNumber `json:"age"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Notes          string     `json:"notes"`
}

// TravelerBooking is a row of the traveler's "my bookings" listing.
type TravelerBooking struct {
	BookingID     int64     `json:"booking_id"`
	FlightID      int64     `json:"flight_id"`
	FromCountry   string    `json:"from_country"`
	ToCountry     string    `json:"to_country"`
	FromCity      string    `json:"from_city"`
	ToCity        string    `json:"to_city"`
	DepartureTime time.Time `json:"departure_time"`
	Price         float64   `json:"price"`
	AirlineName   string    `json:"airline_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// AirlineBooking is a row of the airline's bookings listing: the booking
// with passenger details joined with its flight route.
type AirlineBooking struct {
	BookingID      int64     `json:"booking_id"`
	UserID         int64     `json:"user_id"`
	FlightID       int64     `json:"flight_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
	Age            int       `json:"age"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Notes          string    `json:"notes"`
	BookingDate    time.Time `json:"booking_date"`
	FromCity       string    `json:"from_city"`
	ToCity         string    `json:"to_city"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	FlightPrice    float64   `json:"flight_price"`
	AirlineName    string    `json:"airline_name"`
}

// ToBooking converts the input into a Booking of userID on flightID.
func (in BookingInput) ToBooking(userID, flightID int64) Booking {
	return Booking{
		UserID:         userID,
		FlightID:       flightID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		PassportNumber: strings.TrimSpace(in.PassportNumber),
		Nationality:    strings.TrimSpace(in.Nationality),
		Age:            in.Age.Int(),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Notes:          in.Notes,
	}
}
