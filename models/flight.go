package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Flight is a scheduled flight published by an airline.
type Flight struct {
	ID             int64     `json:"id"`
	AirlineID      int64     `json:"airline_id"`
	FromCountry    string    `json:"from_country"`
	ToCountry      string    `json:"to_country"`
	FromCity       string    `json:"from_city"`
	ToCity         string    `json:"to_city"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Price          float64   `json:"price"`
	FlightNumber   string    `json:"flight_number"`
	Baggage        int       `json:"baggage"`
	Wifi           bool      `json:"wifi"`
	SeatsAvailable int       `json:"seats_available"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Flight model.
func (f Flight) TableName() string {
	return "flights"
}

// PublicFlight is the projection of a flight returned by the public
// listing endpoints: the owner id is replaced by the airline name.
type PublicFlight struct {
	ID             int64     `json:"id"`
	FromCountry    string    `json:"from_country"`
	ToCountry      string    `json:"to_country"`
	FromCity       string    `json:"from_city"`
	ToCity         string    `json:"to_city"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Price          float64   `json:"price"`
	FlightNumber   string    `json:"flight_number"`
	Baggage        int       `json:"baggage"`
	Wifi           bool      `json:"wifi"`
	SeatsAvailable int       `json:"seats_available"`
	AirlineName    string    `json:"airline_name"`
}

// FlightInput is the request body of flight create and update.
//
// Fields are kept loosely typed so that values sent as strings
// ("120.50", "2026-01-02T10:00:00Z", "3") are coerced the same way as
// native JSON numbers and booleans.
type FlightInput struct {
	FromCountry    string     `json:"from_country"`
	ToCountry      string     `json:"to_country"`
	FromCity       string     `json:"from_city"`
	ToCity         string     `json:"to_city"`
	DepartureTime  string     `json:"departure_time"`
	ArrivalTime    string     `json:"arrival_time"`
	Price          FlexNumber `json:"price"`
	FlightNumber   string     `json:"flight_number"`
	Baggage        FlexNumber `json:"baggage"`
	Wifi           bool       `json:"wifi"`
	SeatsAvailable FlexNumber `json:"seats_available"`
}

// FlightFilter narrows a flight listing. Zero-valued fields are ignored.
type FlightFilter struct {
	AirlineID   int64
	FromCountry string
	ToCountry   string
	FromCity    string
	ToCity      string
}

// ErrInvalidTimestamp is returned by ParseTimestamp for unrecognized input.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// timestampLayouts are tried in order by ParseTimestamp. Layouts without a
// zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseTimestamp parses departure and arrival times sent by clients.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ToFlight coerces the input into a Flight owned by airlineID.
// Baggage defaults to 0 and Wifi to false when omitted.
func (in FlightInput) ToFlight(airlineID int64) (Flight, error) {
	departure, err := ParseTimestamp(in.DepartureTime)
	if err != nil {
		return Flight{}, err
	}
	arrival, err := ParseTimestamp(in.ArrivalTime)
	if err != nil {
		return Flight{}, err
	}

	return Flight{
		AirlineID:      airlineID,
		FromCountry:    strings.TrimSpace(in.FromCountry),
		ToCountry:      strings.TrimSpace(in.ToCountry),
		FromCity:       strings.TrimSpace(in.FromCity),
		ToCity:         strings.TrimSpace(in.ToCity),
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		Price:          in.Price.Value,
		FlightNumber:   strings.TrimSpace(in.FlightNumber),
		Baggage:        in.Baggage.Int(),
		Wifi:           in.Wifi,
		SeatsAvailable: in.SeatsAvailable.Int(),
	}, nil
}

// IsEmpty reports whether no filter field is set.
func (f FlightFilter) IsEmpty() bool {
	return f == FlightFilter{}
}
