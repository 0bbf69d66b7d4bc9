package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
)

// travelerSignUpRequest is the body of POST /auth/sign-up-user. A role sent
// by the client is not decoded: travelers always get the "user" role.
type travelerSignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signUpTraveler(w http.ResponseWriter, r *http.Request) {
	var req travelerSignUpRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignUpTraveler(r.Context(), models.Traveler{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", token.Claims.ID).Msg("traveler signed up")
	writeToken(w, token, http.StatusCreated)
}

func (h *Handler) signInTraveler(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignInTraveler(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", token.Claims.ID).Msg("traveler signed in")
	writeToken(w, token, http.StatusOK)
}

func (h *Handler) signUpAirline(w http.ResponseWriter, r *http.Request) {
	var airline models.Airline
	if err := h.decodeJSON(w, r, &airline); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignUpAirline(r.Context(), airline)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", token.Claims.ID).Msg("airline signed up")
	writeToken(w, token, http.StatusCreated)
}

func (h *Handler) signInAirline(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignInAirline(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", token.Claims.ID).Msg("airline signed in")
	writeToken(w, token, http.StatusOK)
}

// writeToken sends the token both in the body and in the Authorization header.
func writeToken(w http.ResponseWriter, token models.Token, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, status)
}
