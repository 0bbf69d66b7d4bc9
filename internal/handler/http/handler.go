package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/service"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request through middleware.Timeout.
	// Zero disables the limit.
	requestTimeout time.Duration

	// maxBodySize and maxUploadSize cap JSON and multipart bodies.
	// Zero disables the cap.
	maxBodySize   int64
	maxUploadSize int64

	// allowedOrigins feeds the CORS handler. Empty allows any origin.
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		maxBodySize:    cfg.MaxBodySize,
		maxUploadSize:  cfg.MaxUploadSize,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}

// decodeJSON decodes at most h.maxBodySize bytes of the request body into
// dst. Malformed JSON is reported as ErrInvalidJSON so it maps to a
// validation_error.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	limitBody(w, r, h.maxBodySize)

	err := utils.DecodeJSON(r, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrEmptyBody), errors.Is(err, models.ErrNotANumber):
		return err
	default:
		if tooLarge := bodyTooLarge(err); tooLarge != nil {
			return tooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}

func limitBody(w http.ResponseWriter, r *http.Request, limit int64) {
	if limit > 0 && r.Body != nil && r.Body != http.NoBody {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
}

// bodyTooLarge converts a read past the limitBody cap into ErrBodyTooLarge.
func bodyTooLarge(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
	}
	return nil
}

// pathID parses the numeric path parameter param.
func pathID(r *http.Request, param string) (int64, error) {
	return utils.ParseID(chi.URLParam(r, param))
}
