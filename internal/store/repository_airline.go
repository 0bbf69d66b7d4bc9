package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/models"
)

// airlineRepository is the PostgreSQL-backed implementation of
// [AirlineRepository]. The stored bcrypt hash lives in the "password" column.
type airlineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAirlineRepository constructs an [AirlineRepository] backed by db.
func NewAirlineRepository(db *DB, logger *logger.Logger) AirlineRepository {
	logger.Debug().Msg("creating airline repository")
	return &airlineRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAirline inserts a new airline account. airline.PasswordHash must
// already hold the bcrypt hash.
//
// A unique violation on employee_username is reported as
// [ErrLoginAlreadyExists].
func (r *airlineRepository) CreateAirline(ctx context.Context, airline models.Airline) (models.Airline, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAirline,
		airline.Name,
		airline.Logo,
		airline.Email,
		airline.Phone,
		airline.License,
		airline.EmployeeUsername,
		airline.PasswordHash,
	)

	created, err := scanAirline(row)
	if err != nil {
		log.Err(err).Str("func", "*airlineRepository.CreateAirline").Bool("retryable", r.db.retryable(err)).Msg("error inserting airline")
		return models.Airline{}, mapWriteError(err, ErrLoginAlreadyExists, nil)
	}

	return created, nil
}

// FindAirlineByUsername returns the airline whose employee_username matches.
func (r *airlineRepository) FindAirlineByUsername(ctx context.Context, employeeUsername string) (models.Airline, error) {
	return r.findAirline(ctx, "*airlineRepository.FindAirlineByUsername", findAirlineByUsername, employeeUsername)
}

// FindAirlineByID returns the airline with the given id.
func (r *airlineRepository) FindAirlineByID(ctx context.Context, id int64) (models.Airline, error) {
	return r.findAirline(ctx, "*airlineRepository.FindAirlineByID", findAirlineByID, id)
}

func (r *airlineRepository) findAirline(ctx context.Context, funcName, query string, arg any) (models.Airline, error) {
	log := logger.FromContext(ctx)

	airline, err := scanAirline(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Airline{}, ErrAirlineNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("error finding airline")
		return models.Airline{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return airline, nil
}

func scanAirline(row rowScanner) (models.Airline, error) {
	var a models.Airline
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Logo,
		&a.Email,
		&a.Phone,
		&a.License,
		&a.EmployeeUsername,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	return a, err
}
