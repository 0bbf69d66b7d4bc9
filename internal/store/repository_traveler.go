package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/models"
)

// travelerRepository is the PostgreSQL-backed implementation of
// [TravelerRepository]. Travelers live in the "users" table.
type travelerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTravelerRepository constructs a [TravelerRepository] backed by db.
func NewTravelerRepository(db *DB, logger *logger.Logger) TravelerRepository {
	logger.Debug().Msg("creating traveler repository")
	return &travelerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTraveler inserts a traveler account. The role column is always
// written as "user".
func (r *travelerRepository) CreateTraveler(ctx context.Context, traveler models.Traveler) (models.Traveler, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTraveler,
		traveler.Username,
		traveler.Email,
		traveler.PasswordHash,
		models.RoleTraveler.String(),
	)

	created, err := scanTraveler(row)
	if err != nil {
		log.Err(err).Str("func", "*travelerRepository.CreateTraveler").Bool("retryable", r.db.retryable(err)).Msg("error inserting user")
		return models.Traveler{}, mapWriteError(err, ErrLoginAlreadyExists, nil)
	}

	return created, nil
}

func (r *travelerRepository) FindTravelerByUsername(ctx context.Context, username string) (models.Traveler, error) {
	return r.findTraveler(ctx, "*travelerRepository.FindTravelerByUsername", findTravelerByUsername, username)
}

func (r *travelerRepository) FindTravelerByID(ctx context.Context, id int64) (models.Traveler, error) {
	return r.findTraveler(ctx, "*travelerRepository.FindTravelerByID", findTravelerByID, id)
}

// UpdateProfile replaces username and email of the traveler.
func (r *travelerRepository) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.Traveler, error) {
	log := logger.FromContext(ctx)

	updated, err := scanTraveler(r.db.QueryRowContext(ctx, updateTravelerProfile, update.Username, update.Email, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Traveler{}, ErrTravelerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelerRepository.UpdateProfile").Bool("retryable", r.db.retryable(err)).Msg("error updating user profile")
		return models.Traveler{}, mapWriteError(err, ErrLoginAlreadyExists, nil)
	}

	return updated, nil
}

// UpdatePhoto sets the stored photo name of the traveler.
func (r *travelerRepository) UpdatePhoto(ctx context.Context, id int64, photo string) (models.Traveler, error) {
	log := logger.FromContext(ctx)

	updated, err := scanTraveler(r.db.QueryRowContext(ctx, updateTravelerPhoto, photo, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Traveler{}, ErrTravelerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelerRepository.UpdatePhoto").Bool("retryable", r.db.retryable(err)).Msg("error updating user photo")
		return models.Traveler{}, mapWriteError(err, nil, nil)
	}

	return updated, nil
}

func (r *travelerRepository) DeleteTraveler(ctx context.Context, id int64) (models.Traveler, error) {
	log := logger.FromContext(ctx)

	deleted, err := scanTraveler(r.db.QueryRowContext(ctx, deleteTraveler, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Traveler{}, ErrTravelerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelerRepository.DeleteTraveler").Bool("retryable", r.db.retryable(err)).Msg("error deleting user")
		return models.Traveler{}, mapWriteError(err, nil, nil)
	}

	return deleted, nil
}

func (r *travelerRepository) findTraveler(ctx context.Context, funcName, query string, arg any) (models.Traveler, error) {
	log := logger.FromContext(ctx)

	traveler, err := scanTraveler(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Traveler{}, ErrTravelerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("error finding user")
		return models.Traveler{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return traveler, nil
}

func scanTraveler(row rowScanner) (models.Traveler, error) {
	var (
		t    models.Traveler
		role string
	)
	if err := row.Scan(&t.ID, &t.Username, &t.Email, &t.Photo, &role, &t.PasswordHash, &t.CreatedAt); err != nil {
		return models.Traveler{}, err
	}
	// rows of the users table never carry airline rights
	t.Role = models.RoleTraveler

	return t, nil
}
