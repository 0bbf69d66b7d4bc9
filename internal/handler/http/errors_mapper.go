package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/service"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/internal/validators"
	"github.com/MKhiriev/go-flight-booking/models"
)

// genericStorageMessage replaces the text of every storage_error so that
// driver details never reach the client.
const genericStorageMessage = "internal server error"

type errorMapping struct {
	target error
	kind   models.ErrorKind
	status int
}

// errorStatusMap is checked in order; the first target matched with
// errors.Is decides the envelope. Anything unmatched is a storage_error.
var errorStatusMap = []errorMapping{
	{ErrEmptyAuthorizationHeader, models.ErrorKindMissingCredentials, http.StatusUnauthorized},
	{ErrEmptyToken, models.ErrorKindMissingCredentials, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, models.ErrorKindMissingCredentials, http.StatusUnauthorized},

	{utils.ErrTokenExpired, models.ErrorKindExpired, http.StatusUnauthorized},
	{utils.ErrTokenInvalidSignature, models.ErrorKindInvalidCredentials, http.StatusUnauthorized},
	{utils.ErrTokenMalformed, models.ErrorKindInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, models.ErrorKindInvalidCredentials, http.StatusUnauthorized},

	{ErrForbidden, models.ErrorKindForbidden, http.StatusForbidden},

	{ErrRouteNotFound, models.ErrorKindNotFound, http.StatusNotFound},
	{store.ErrAirlineNotFound, models.ErrorKindNotFound, http.StatusNotFound},
	{store.ErrTravelerNotFound, models.ErrorKindNotFound, http.StatusNotFound},
	{store.ErrFlightNotFound, models.ErrorKindNotFound, http.StatusNotFound},
	{store.ErrBookingNotFound, models.ErrorKindNotFound, http.StatusNotFound},

	{store.ErrLoginAlreadyExists, models.ErrorKindConflict, http.StatusConflict},

	{validators.ErrValidation, models.ErrorKindValidation, http.StatusBadRequest},
	{models.ErrInvalidTimestamp, models.ErrorKindValidation, http.StatusBadRequest},
	{utils.ErrEmptyBody, models.ErrorKindValidation, http.StatusBadRequest},
	{utils.ErrInvalidID, models.ErrorKindValidation, http.StatusBadRequest},
	{ErrInvalidJSON, models.ErrorKindValidation, http.StatusBadRequest},
	{ErrInvalidQueryParam, models.ErrorKindValidation, http.StatusBadRequest},
	{ErrInvalidPhotoUpload, models.ErrorKindValidation, http.StatusBadRequest},
	{ErrInvalidGzipBody, models.ErrorKindValidation, http.StatusBadRequest},
	{ErrBodyTooLarge, models.ErrorKindValidation, http.StatusBadRequest},
	{models.ErrNotANumber, models.ErrorKindValidation, http.StatusBadRequest},
	{models.ErrUnknownRole, models.ErrorKindValidation, http.StatusBadRequest},
	{service.ErrNoPhotoProvided, models.ErrorKindValidation, http.StatusBadRequest},
	{store.ErrPhotoTooLarge, models.ErrorKindValidation, http.StatusBadRequest},
}

// mapError returns the envelope and status for err.
func mapError(err error) (models.ErrorResponse, int) {
	for _, m := range errorStatusMap {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.target.Error()
		if m.kind == models.ErrorKindValidation {
			message = err.Error()
		}
		return models.ErrorResponse{Error: models.ErrorBody{Kind: m.kind, Message: message}}, m.status
	}

	return models.ErrorResponse{
		Error: models.ErrorBody{Kind: models.ErrorKindStorage, Message: genericStorageMessage},
	}, http.StatusInternalServerError
}

func statusFromError(err error) int {
	_, status := mapError(err)
	return status
}

// writeError logs err and writes the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	body, status := mapError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Str("kind", string(body.Error.Kind)).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
