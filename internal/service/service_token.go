package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
)

// tokenService signs HS256 tokens with the configured key and issuer.
type tokenService struct {
	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, claims models.Claims, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		ttl = s.tokenDuration
	}

	token, err := utils.IssueToken(claims, s.issuer, s.signKey, ttl)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*tokenService.Issue").
			Int64("id", claims.ID).
			Str("role", claims.Role.String()).
			Msg("error issuing token")
		return models.Token{}, err
	}

	return token, nil
}

// Verify returns utils.ErrTokenExpired, utils.ErrTokenInvalidSignature or
// utils.ErrTokenMalformed on failure.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.VerifyToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.Claims{}, err
	}

	return claims, nil
}
