package service

import (
	"fmt"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/models"
)

type Services struct {
	TokenService    TokenService
	AuthService     AuthService
	AirlineService  AirlineService
	TravelerService TravelerService
	FlightService   FlightService
	BookingService  BookingService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		TokenService:    tokenService,
		AuthService:     NewAuthService(storages.AirlineRepository, storages.TravelerRepository, tokenService, cfg.App, logger),
		AirlineService:  NewAirlineService(storages.AirlineRepository, logger),
		TravelerService: NewTravelerService(storages.TravelerRepository, storages.PhotoStorage, logger),
		FlightService:   NewFlightValidationService().Wrap(NewFlightService(storages.FlightRepository, logger)),
		BookingService:  NewBookingValidationService().Wrap(NewBookingService(storages.BookingRepository, storages.FlightRepository, logger)),
		AppInfoService:  appInfoService,
	}, nil
}
