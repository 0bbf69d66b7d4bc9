package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
)

const (
	photoFormField = "photo"

	// maxMultipartMemory is the part of a multipart upload kept in memory;
	// the rest is spooled to temporary files by net/http.
	maxMultipartMemory = 8 << 20
)

func (h *Handler) getCurrentTraveler(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeTraveler(w, r, claims.ID)
}

// getTraveler runs behind requireSelf("userId").
func (h *Handler) getTraveler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeTraveler(w, r, id)
}

func (h *Handler) writeTraveler(w http.ResponseWriter, r *http.Request, id int64) {
	traveler, err := h.services.TravelerService.GetTraveler(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.TravelerResponse{User: traveler}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = h.decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	traveler, err := h.services.TravelerService.UpdateProfile(r.Context(), claims.ID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TravelerResponse{User: traveler}, http.StatusOK)
}

// updatePhoto accepts a multipart/form-data body with the image in the
// "photo" field.
func (h *Handler) updatePhoto(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limitBody(w, r, h.maxUploadSize)
	if err = r.ParseMultipartForm(maxMultipartMemory); err != nil {
		if tooLarge := bodyTooLarge(err); tooLarge != nil {
			writeError(w, r, tooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPhotoUpload, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(photoFormField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPhotoUpload, err))
		return
	}
	defer file.Close()

	traveler, err := h.services.TravelerService.UpdatePhoto(r.Context(), claims.ID, header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", claims.ID).Str("photo", traveler.Photo).Msg("profile photo updated")
	utils.WriteJSON(w, models.TravelerResponse{User: traveler}, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TravelerService.DeleteTraveler(r.Context(), claims.ID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", claims.ID).Msg("traveler account deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "account deleted"}, http.StatusOK)
}
