package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/models"
)

// flightRepository is the PostgreSQL-backed implementation of
// [FlightRepository].
type flightRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFlightRepository constructs a [FlightRepository] backed by db.
func NewFlightRepository(db *DB, logger *logger.Logger) FlightRepository {
	logger.Debug().Msg("creating flight repository")
	return &flightRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateFlight inserts flight and returns the stored row. A foreign key
// violation on airline_id is reported as [ErrAirlineNotFound].
func (r *flightRepository) CreateFlight(ctx context.Context, flight models.Flight) (models.Flight, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFlight,
		flight.AirlineID,
		flight.FromCountry,
		flight.ToCountry,
		flight.FromCity,
		flight.ToCity,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.Price,
		flight.FlightNumber,
		flight.Baggage,
		flight.Wifi,
		flight.SeatsAvailable,
	)

	created, err := scanFlight(row)
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.CreateFlight").Bool("retryable", r.db.retryable(err)).Msg("error inserting flight")
		return models.Flight{}, mapWriteError(err, nil, ErrAirlineNotFound)
	}

	return created, nil
}

// GetFlight returns the full flight row, including airline_id.
func (r *flightRepository) GetFlight(ctx context.Context, id int64) (models.Flight, error) {
	log := logger.FromContext(ctx)

	flight, err := scanFlight(r.db.QueryRowContext(ctx, getFlight, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Flight{}, ErrFlightNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.GetFlight").Bool("retryable", r.db.retryable(err)).Msg("error getting flight")
		return models.Flight{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return flight, nil
}

// GetPublicFlight returns the flight joined with its airline name.
func (r *flightRepository) GetPublicFlight(ctx context.Context, id int64) (models.PublicFlight, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPublicFlightQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.GetPublicFlight").Msg("error building query")
		return models.PublicFlight{}, err
	}

	flight, err := scanPublicFlight(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PublicFlight{}, ErrFlightNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.GetPublicFlight").Bool("retryable", r.db.retryable(err)).Msg("error getting flight")
		return models.PublicFlight{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return flight, nil
}

// ListPublicFlights returns flights matching filter ordered by departure.
// The result is never nil.
func (r *flightRepository) ListPublicFlights(ctx context.Context, filter models.FlightFilter) ([]models.PublicFlight, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPublicFlightsQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.ListPublicFlights").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.ListPublicFlights").Bool("retryable", r.db.retryable(err)).Msg("error listing flights")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	flights := make([]models.PublicFlight, 0)
	for rows.Next() {
		flight, err := scanPublicFlight(rows)
		if err != nil {
			log.Err(err).Str("func", "*flightRepository.ListPublicFlights").Msg("error scanning flight")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		flights = append(flights, flight)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*flightRepository.ListPublicFlights").Msg("error iterating flights")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return flights, nil
}

// ListAirlineFlights returns every flight of the airline, newest first.
func (r *flightRepository) ListAirlineFlights(ctx context.Context, airlineID int64) ([]models.Flight, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAirlineFlights, airlineID)
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.ListAirlineFlights").Bool("retryable", r.db.retryable(err)).Msg("error listing airline flights")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	flights := make([]models.Flight, 0)
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			log.Err(err).Str("func", "*flightRepository.ListAirlineFlights").Msg("error scanning flight")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		flights = append(flights, flight)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return flights, nil
}

// UpdateFlight overwrites the mutable columns. Zero matched rows, whether
// the flight is missing or owned by another airline, yields
// [ErrFlightNotFound].
func (r *flightRepository) UpdateFlight(ctx context.Context, flight models.Flight) (models.Flight, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFlightQuery(ctx, flight)
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.UpdateFlight").Msg("error building query")
		return models.Flight{}, err
	}

	updated, err := scanFlight(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Flight{}, ErrFlightNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*flightRepository.UpdateFlight").Bool("retryable", r.db.retryable(err)).Msg("error updating flight")
		return models.Flight{}, mapWriteError(err, nil, nil)
	}

	return updated, nil
}

// DeleteFlight removes the bookings of the flight and then the flight itself
// inside a single transaction. Nothing is removed unless the flight belongs
// to airlineID.
func (r *flightRepository) DeleteFlight(ctx context.Context, id, airlineID int64) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*flightRepository.DeleteFlight").
			Int64("flight_id", id).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	bookingsResult, err := tx.ExecContext(ctx, deleteFlightBookings, id, airlineID)
	if err != nil {
		log.Err(err).
			Str("func", "*flightRepository.DeleteFlight").
			Int64("flight_id", id).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete flight bookings")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	flightResult, err := tx.ExecContext(ctx, deleteFlight, id, airlineID)
	if err != nil {
		log.Err(err).
			Str("func", "*flightRepository.DeleteFlight").
			Int64("flight_id", id).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete flight")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := flightResult.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*flightRepository.DeleteFlight").
			Int64("flight_id", id).
			Int64("airline_id", airlineID).
			Msg("flight not found")
		return 0, ErrFlightNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*flightRepository.DeleteFlight").
			Int64("flight_id", id).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	deletedBookings, _ := bookingsResult.RowsAffected()
	log.Debug().
		Str("func", "*flightRepository.DeleteFlight").
		Int64("flight_id", id).
		Int64("deleted_bookings", deletedBookings).
		Msg("flight deleted")

	return deletedBookings, nil
}

func scanFlight(row rowScanner) (models.Flight, error) {
	var f models.Flight
	err := row.Scan(
		&f.ID,
		&f.AirlineID,
		&f.FromCountry,
		&f.ToCountry,
		&f.FromCity,
		&f.ToCity,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.Price,
		&f.FlightNumber,
		&f.Baggage,
		&f.Wifi,
		&f.SeatsAvailable,
		&f.CreatedAt,
	)
	return f, err
}

func scanPublicFlight(row rowScanner) (models.PublicFlight, error) {
	var f models.PublicFlight
	err := row.Scan(
		&f.ID,
		&f.FromCountry,
		&f.ToCountry,
		&f.FromCity,
		&f.ToCity,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.Price,
		&f.FlightNumber,
		&f.Baggage,
		&f.Wifi,
		&f.SeatsAvailable,
		&f.AirlineName,
	)
	return f, err
}
