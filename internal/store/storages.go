package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	AirlineRepository  AirlineRepository
	TravelerRepository TravelerRepository
	FlightRepository   FlightRepository
	BookingRepository  BookingRepository
	PhotoStorage       PhotoStorage

	db *DB
}

// NewStorages connects to postgres, applies migrations and builds all
// repositories on top of the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	photos, err := NewFilePhotoStorage(cfg.Files, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, photos, logger), nil
}

func newStorages(db *DB, photos PhotoStorage, logger *logger.Logger) *Storages {
	return &Storages{
		AirlineRepository:  NewAirlineRepository(db, logger),
		TravelerRepository: NewTravelerRepository(db, logger),
		FlightRepository:   NewFlightRepository(db, logger),
		BookingRepository:  NewBookingRepository(db, logger),
		PhotoStorage:       photos,
		db:                 db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
