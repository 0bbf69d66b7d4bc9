package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/internal/validators"
	"github.com/MKhiriev/go-flight-booking/models"
)

// travelerService manages traveler profiles and their stored photos.
type travelerService struct {
	travelerRepository store.TravelerRepository
	photoStorage       store.PhotoStorage
	validator          validators.Validator

	logger *logger.Logger
}

func NewTravelerService(travelerRepository store.TravelerRepository, photoStorage store.PhotoStorage, logger *logger.Logger) TravelerService {
	return &travelerService{
		travelerRepository: travelerRepository,
		photoStorage:       photoStorage,
		validator:          validators.NewAccountValidator(),
		logger:             logger,
	}
}

func (s *travelerService) GetTraveler(ctx context.Context, id int64) (models.Traveler, error) {
	return s.travelerRepository.FindTravelerByID(ctx, id)
}

// UpdateProfile replaces username and email in one statement.
// Omitted fields are stored as empty strings. The stored photo is kept.
func (s *travelerService) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.Traveler, error) {
	update.Username = strings.TrimSpace(update.Username)
	update.Email = strings.TrimSpace(update.Email)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Traveler{}, fmt.Errorf("invalid profile data: %w", err)
	}

	return s.travelerRepository.UpdateProfile(ctx, id, update)
}

// UpdatePhoto stores a new photo file, points the profile at it and then
// removes the previous file. The new file is removed again when the profile
// cannot be updated.
func (s *travelerService) UpdatePhoto(ctx context.Context, id int64, originalName string, photo io.Reader) (models.Traveler, error) {
	log := logger.FromContext(ctx)

	if photo == nil {
		return models.Traveler{}, ErrNoPhotoProvided
	}

	current, err := s.travelerRepository.FindTravelerByID(ctx, id)
	if err != nil {
		return models.Traveler{}, err
	}

	name, err := s.photoStorage.Save(ctx, originalName, photo)
	if err != nil {
		return models.Traveler{}, fmt.Errorf("error saving photo: %w", err)
	}

	updated, err := s.travelerRepository.UpdatePhoto(ctx, id, name)
	if err != nil {
		if delErr := s.photoStorage.Delete(ctx, name); delErr != nil {
			log.Err(delErr).Str("photo", name).Msg("error removing orphaned photo")
		}
		return models.Traveler{}, err
	}

	s.removePhoto(ctx, current.Photo)
	return updated, nil
}

// DeleteTraveler removes the account, its bookings by cascade, and the
// stored photo file.
func (s *travelerService) DeleteTraveler(ctx context.Context, id int64) error {
	deleted, err := s.travelerRepository.DeleteTraveler(ctx, id)
	if err != nil {
		return err
	}

	s.removePhoto(ctx, deleted.Photo)
	return nil
}

// removePhoto deletes a stored photo. Failures are logged only.
func (s *travelerService) removePhoto(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := s.photoStorage.Delete(ctx, name); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("photo", name).Msg("previous photo was not removed")
	}
}
