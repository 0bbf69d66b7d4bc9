package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-flight-booking/models"
)

// psql builds postgres-flavoured statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	airlineColumns = `id, name, logo, email, phone, license, employee_username, password, created_at`

	createAirline = `INSERT INTO airlines (name, logo, email, phone, license, employee_username, password)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + airlineColumns + `;`

	findAirlineByUsername = `SELECT ` + airlineColumns + `
    FROM airlines
    WHERE employee_username = $1;`

	findAirlineByID = `SELECT ` + airlineColumns + `
    FROM airlines
    WHERE id = $1;`

	travelerColumns = `id, username, email, photo, role, hashed_password, created_at`

	createTraveler = `INSERT INTO users (username, email, hashed_password, role)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + travelerColumns + `;`

	findTravelerByUsername = `SELECT ` + travelerColumns + `
    FROM users
    WHERE username = $1;`

	findTravelerByID = `SELECT ` + travelerColumns + `
    FROM users
    WHERE id = $1;`

	updateTravelerProfile = `UPDATE users
    SET username = $1, email = $2
    WHERE id = $3
    RETURNING ` + travelerColumns + `;`

	updateTravelerPhoto = `UPDATE users
    SET photo = $1
    WHERE id = $2
    RETURNING ` + travelerColumns + `;`

	deleteTraveler = `DELETE FROM users
    WHERE id = $1
    RETURNING ` + travelerColumns + `;`

	flightColumns = `id, airline_id, from_country, to_country, from_city, to_city, departure_time, arrival_time,
    price::float8, flight_number, baggage, wifi, seats_available, created_at`

	createFlight = `INSERT INTO flights (
			airline_id,
			from_country,
			to_country,
			from_city,
			to_city,
			departure_time,
			arrival_time,
			price,
			flight_number,
			baggage,
			wifi,
			seats_available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING ` + flightColumns + `;`

	getFlight = `SELECT ` + flightColumns + `
    FROM flights
    WHERE id = $1;`

	listAirlineFlights = `SELECT ` + flightColumns + `
    FROM flights
    WHERE airline_id = $1
    ORDER BY created_at DESC;`

	deleteFlightBookings = `DELETE FROM bookings
    WHERE flight_id IN (SELECT id FROM flights WHERE id = $1 AND airline_id = $2);`

	deleteFlight = `DELETE FROM flights
    WHERE id = $1 AND airline_id = $2;`

	bookingColumns = `id, user_id, flight_id, first_name, last_name, passport_number, nationality, age, email, phone, notes, created_at`

	createBooking = `INSERT INTO bookings (
			user_id,
			flight_id,
			first_name,
			last_name,
			passport_number,
			nationality,
			age,
			email,
			phone,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + bookingColumns + `;`

	listTravelerBookings = `SELECT
        b.id,
        b.flight_id,
        f.from_country,
        f.to_country,
        f.from_city,
        f.to_city,
        f.departure_time,
        f.price::float8,
        a.name,
        b.created_at
    FROM bookings b
    JOIN flights f ON b.flight_id = f.id
    JOIN airlines a ON f.airline_id = a.id
    WHERE b.user_id = $1
    ORDER BY b.created_at DESC;`

	deleteBooking = `DELETE FROM bookings
    WHERE id = $1 AND user_id = $2
    RETURNING ` + bookingColumns + `;`
)

var publicFlightColumns = []string{
	"f.id",
	"f.from_country",
	"f.to_country",
	"f.from_city",
	"f.to_city",
	"f.departure_time",
	"f.arrival_time",
	"f.price::float8",
	"f.flight_number",
	"f.baggage",
	"f.wifi",
	"f.seats_available",
	"a.name",
}

var airlineBookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.flight_id",
	"b.first_name",
	"b.last_name",
	"b.passport_number",
	"b.nationality",
	"b.age",
	"b.email",
	"b.phone",
	"b.notes",
	"b.created_at",
	"f.from_city",
	"f.to_city",
	"f.departure_time",
	"f.arrival_time",
	"f.price::float8",
	"a.name",
}

// basePublicFlightQuery joins the owning airline to expose airline_name.
func basePublicFlightQuery() sq.SelectBuilder {
	return psql.Select(publicFlightColumns...).
		From("flights f").
		Join("airlines a ON f.airline_id = a.id")
}

// buildListPublicFlightsQuery builds the public flight listing. Every
// non-empty field of filter adds an equality condition.
func buildListPublicFlightsQuery(_ context.Context, filter models.FlightFilter) (string, []any, error) {
	query := basePublicFlightQuery()

	conditions := sq.Eq{}
	if filter.AirlineID > 0 {
		conditions["f.airline_id"] = filter.AirlineID
	}
	if filter.FromCountry != "" {
		conditions["f.from_country"] = filter.FromCountry
	}
	if filter.ToCountry != "" {
		conditions["f.to_country"] = filter.ToCountry
	}
	if filter.FromCity != "" {
		conditions["f.from_city"] = filter.FromCity
	}
	if filter.ToCity != "" {
		conditions["f.to_city"] = filter.ToCity
	}
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	sqlQuery, args, err := query.OrderBy("f.departure_time ASC", "f.id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

func buildGetPublicFlightQuery(_ context.Context, id int64) (string, []any, error) {
	sqlQuery, args, err := basePublicFlightQuery().
		Where(sq.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

// buildUpdateFlightQuery replaces every mutable column of the flight scoped
// by id and airline_id.
func buildUpdateFlightQuery(_ context.Context, flight models.Flight) (string, []any, error) {
	sqlQuery, args, err := psql.Update("flights").
		SetMap(map[string]any{
			"from_country":    flight.FromCountry,
			"to_country":      flight.ToCountry,
			"from_city":       flight.FromCity,
			"to_city":         flight.ToCity,
			"departure_time":  flight.DepartureTime,
			"arrival_time":    flight.ArrivalTime,
			"price":           flight.Price,
			"flight_number":   flight.FlightNumber,
			"baggage":         flight.Baggage,
			"wifi":            flight.Wifi,
			"seats_available": flight.SeatsAvailable,
		}).
		Where(sq.Eq{"id": flight.ID, "airline_id": flight.AirlineID}).
		Suffix("RETURNING " + flightColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

// buildListAirlineBookingsQuery lists bookings on the airline's flights,
// optionally narrowed to one flight.
func buildListAirlineBookingsQuery(_ context.Context, airlineID, flightID int64) (string, []any, error) {
	conditions := sq.Eq{"a.id": airlineID}
	if flightID > 0 {
		conditions["f.id"] = flightID
	}

	sqlQuery, args, err := psql.Select(airlineBookingColumns...).
		From("bookings b").
		Join("flights f ON b.flight_id = f.id").
		Join("airlines a ON f.airline_id = a.id").
		Where(conditions).
		OrderBy("b.created_at DESC", "b.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}
