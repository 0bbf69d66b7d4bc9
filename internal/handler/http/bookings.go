package http

import (
	"net/http"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	flightID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.BookingInput
	if err = h.decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.services.BookingService.CreateBooking(r.Context(), claims.ID, flightID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("booking_id", booking.ID).
		Int64("flight_id", flightID).
		Msg("booking created")
	utils.WriteJSON(w, booking, http.StatusCreated)
}

func (h *Handler) listMyBookings(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookings, err := h.services.BookingService.ListTravelerBookings(r.Context(), claims.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookings, http.StatusOK)
}

// deleteBooking removes one of the caller's own bookings. A booking of
// another traveler is reported as not found.
func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.BookingService.DeleteBooking(r.Context(), bookingID, claims.ID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "booking deleted"}, http.StatusOK)
}

func (h *Handler) listAirlineBookings(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookings, err := h.services.BookingService.ListAirlineBookings(r.Context(), claims.ID, 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookings, http.StatusOK)
}

// listFlightBookings runs behind requireFlightOwner.
func (h *Handler) listFlightBookings(w http.ResponseWriter, r *http.Request) {
	flight, ok := utils.GetFlightFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoFlightInContext)
		return
	}

	bookings, err := h.services.BookingService.ListAirlineBookings(r.Context(), flight.AirlineID, flight.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookings, http.StatusOK)
}
