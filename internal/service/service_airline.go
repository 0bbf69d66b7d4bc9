package service

import (
	"context"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/models"
)

type airlineService struct {
	airlineRepository store.AirlineRepository
	logger            *logger.Logger
}

func NewAirlineService(airlineRepository store.AirlineRepository, logger *logger.Logger) AirlineService {
	return &airlineService{
		airlineRepository: airlineRepository,
		logger:            logger,
	}
}

func (s *airlineService) GetAirline(ctx context.Context, id int64) (models.Airline, error) {
	return s.airlineRepository.FindAirlineByID(ctx, id)
}
