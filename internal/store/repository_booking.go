package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/models"
)

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository].
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookingRepository constructs a [BookingRepository] backed by db.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBooking inserts booking. A flight removed between the existence
// check and the insert surfaces as [ErrFlightNotFound].
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBooking,
		booking.UserID,
		booking.FlightID,
		booking.FirstName,
		booking.LastName,
		booking.PassportNumber,
		booking.Nationality,
		booking.Age,
		booking.Email,
		booking.Phone,
		booking.Notes,
	)

	created, err := scanBooking(row)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Bool("retryable", r.db.retryable(err)).Msg("error inserting booking")
		return models.Booking{}, mapWriteError(err, nil, ErrFlightNotFound)
	}

	return created, nil
}

// ListTravelerBookings returns the traveler's bookings joined with flight
// and airline data, newest first.
func (r *bookingRepository) ListTravelerBookings(ctx context.Context, userID int64) ([]models.TravelerBooking, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTravelerBookings, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListTravelerBookings").Bool("retryable", r.db.retryable(err)).Msg("error listing bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.TravelerBooking, 0)
	for rows.Next() {
		var b models.TravelerBooking
		if err = rows.Scan(
			&b.BookingID,
			&b.FlightID,
			&b.FromCountry,
			&b.ToCountry,
			&b.FromCity,
			&b.ToCity,
			&b.DepartureTime,
			&b.Price,
			&b.AirlineName,
			&b.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*bookingRepository.ListTravelerBookings").Msg("error scanning booking")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}

func (r *bookingRepository) ListAirlineBookings(ctx context.Context, airlineID, flightID int64) ([]models.AirlineBooking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAirlineBookingsQuery(ctx, airlineID, flightID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListAirlineBookings").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListAirlineBookings").Bool("retryable", r.db.retryable(err)).Msg("error listing bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.AirlineBooking, 0)
	for rows.Next() {
		var b models.AirlineBooking
		if err = rows.Scan(
			&b.BookingID,
			&b.UserID,
			&b.FlightID,
			&b.FirstName,
			&b.LastName,
			&b.PassportNumber,
			&b.Nationality,
			&b.Age,
			&b.Email,
			&b.Phone,
			&b.Notes,
			&b.BookingDate,
			&b.FromCity,
			&b.ToCity,
			&b.DepartureTime,
			&b.ArrivalTime,
			&b.FlightPrice,
			&b.AirlineName,
		); err != nil {
			log.Err(err).Str("func", "*bookingRepository.ListAirlineBookings").Msg("error scanning booking")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}

// DeleteBooking removes a booking owned by userID. A booking of another
// traveler is indistinguishable from a missing one.
func (r *bookingRepository) DeleteBooking(ctx context.Context, id, userID int64) (models.Booking, error) {
	log := logger.FromContext(ctx)

	deleted, err := scanBooking(r.db.QueryRowContext(ctx, deleteBooking, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").Bool("retryable", r.db.retryable(err)).Msg("error deleting booking")
		return models.Booking{}, mapWriteError(err, nil, nil)
	}

	return deleted, nil
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.FlightID,
		&b.FirstName,
		&b.LastName,
		&b.PassportNumber,
		&b.Nationality,
		&b.Age,
		&b.Email,
		&b.Phone,
		&b.Notes,
		&b.CreatedAt,
	)
	return b, err
}
