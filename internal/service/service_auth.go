package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/internal/validators"
	"github.com/MKhiriev/go-flight-booking/models"
)

// authService registers and authenticates both account kinds.
//
// Sign-up keeps the check-then-insert order: the lookup gives a clean
// Conflict for the common case while the UNIQUE constraint still catches
// two concurrent sign-ups for the same handle.
type authService struct {
	airlineRepository  store.AirlineRepository
	travelerRepository store.TravelerRepository
	tokenService       TokenService
	validator          validators.Validator

	// passwordHashCost is the bcrypt work factor used on sign-up.
	passwordHashCost int

	logger *logger.Logger
}

func NewAuthService(
	airlineRepository store.AirlineRepository,
	travelerRepository store.TravelerRepository,
	tokenService TokenService,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		airlineRepository:  airlineRepository,
		travelerRepository: travelerRepository,
		tokenService:       tokenService,
		validator:          validators.NewAccountValidator(),
		passwordHashCost:   cfg.PasswordHashCost,
		logger:             logger,
	}
}

// SignUpAirline creates an airline account and returns a token for it.
// A taken employee_username yields store.ErrLoginAlreadyExists.
func (a *authService) SignUpAirline(ctx context.Context, airline models.Airline) (models.Token, error) {
	log := logger.FromContext(ctx)

	airline.EmployeeUsername = strings.TrimSpace(airline.EmployeeUsername)
	airline.Email = strings.TrimSpace(airline.Email)
	if err := a.validator.Validate(ctx, airline); err != nil {
		return models.Token{}, fmt.Errorf("invalid airline data: %w", err)
	}

	_, err := a.airlineRepository.FindAirlineByUsername(ctx, airline.EmployeeUsername)
	switch {
	case err == nil:
		log.Info().Str("employee_username", airline.EmployeeUsername).Msg("airline already exists")
		return models.Token{}, store.ErrLoginAlreadyExists
	case !errors.Is(err, store.ErrAirlineNotFound):
		return models.Token{}, fmt.Errorf("airline lookup failed: %w", err)
	}

	airline.PasswordHash, err = utils.HashPassword(airline.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUpAirline").Msg("error hashing password")
		return models.Token{}, err
	}
	airline.Password = ""

	created, err := a.airlineRepository.CreateAirline(ctx, airline)
	if err != nil {
		log.Err(err).Str("employee_username", airline.EmployeeUsername).Msg("airline creation ended with error")
		return models.Token{}, fmt.Errorf("airline creation ended with error: %w", err)
	}

	return a.issue(ctx, created.Claims())
}

// SignInAirline checks employee_username and password.
func (a *authService) SignInAirline(ctx context.Context, request models.SignInRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	request.EmployeeUsername = strings.TrimSpace(request.EmployeeUsername)
	if err := a.validator.Validate(ctx, request, validators.FieldEmployeeUsername, validators.FieldPassword); err != nil {
		return models.Token{}, fmt.Errorf("invalid sign-in data: %w", err)
	}

	airline, err := a.airlineRepository.FindAirlineByUsername(ctx, request.EmployeeUsername)
	if errors.Is(err, store.ErrAirlineNotFound) {
		log.Info().Str("employee_username", request.EmployeeUsername).Msg("unknown airline")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("airline lookup failed: %w", err)
	}

	if err = a.checkPassword(airline.PasswordHash, request.Password); err != nil {
		log.Info().Int64("id", airline.ID).Msg("wrong password")
		return models.Token{}, err
	}

	return a.issue(ctx, airline.Claims())
}

// SignUpTraveler creates a traveler account. The role is always "user"
// whatever the client sent.
func (a *authService) SignUpTraveler(ctx context.Context, traveler models.Traveler) (models.Token, error) {
	log := logger.FromContext(ctx)

	traveler.Username = strings.TrimSpace(traveler.Username)
	traveler.Email = strings.TrimSpace(traveler.Email)
	traveler.Role = models.RoleTraveler
	if err := a.validator.Validate(ctx, traveler); err != nil {
		return models.Token{}, fmt.Errorf("invalid user data: %w", err)
	}

	_, err := a.travelerRepository.FindTravelerByUsername(ctx, traveler.Username)
	switch {
	case err == nil:
		log.Info().Str("username", traveler.Username).Msg("user already exists")
		return models.Token{}, store.ErrLoginAlreadyExists
	case !errors.Is(err, store.ErrTravelerNotFound):
		return models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	traveler.PasswordHash, err = utils.HashPassword(traveler.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUpTraveler").Msg("error hashing password")
		return models.Token{}, err
	}
	traveler.Password = ""

	created, err := a.travelerRepository.CreateTraveler(ctx, traveler)
	if err != nil {
		log.Err(err).Str("username", traveler.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, created.Claims())
}

func (a *authService) SignInTraveler(ctx context.Context, request models.SignInRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	request.Username = strings.TrimSpace(request.Username)
	if err := a.validator.Validate(ctx, request, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.Token{}, fmt.Errorf("invalid sign-in data: %w", err)
	}

	traveler, err := a.travelerRepository.FindTravelerByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrTravelerNotFound) {
		log.Info().Str("username", request.Username).Msg("unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = a.checkPassword(traveler.PasswordHash, request.Password); err != nil {
		log.Info().Int64("id", traveler.ID).Msg("wrong password")
		return models.Token{}, err
	}

	return a.issue(ctx, traveler.Claims())
}

func (a *authService) checkPassword(hash, password string) error {
	err := utils.VerifyPassword(hash, password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		return ErrInvalidCredentials
	}
	return err
}

func (a *authService) issue(ctx context.Context, claims models.Claims) (models.Token, error) {
	token, err := a.tokenService.Issue(ctx, claims, 0)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}
