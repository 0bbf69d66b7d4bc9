package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
)

func (h *Handler) listFlights(w http.ResponseWriter, r *http.Request) {
	filter, err := flightFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	flights, err := h.services.FlightService.ListFlights(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, flights, http.StatusOK)
}

// flightFilterFromQuery reads the optional from_country, to_country,
// from_city, to_city and airline_id query parameters.
func flightFilterFromQuery(r *http.Request) (models.FlightFilter, error) {
	q := r.URL.Query()
	filter := models.FlightFilter{
		FromCountry: strings.TrimSpace(q.Get("from_country")),
		ToCountry:   strings.TrimSpace(q.Get("to_country")),
		FromCity:    strings.TrimSpace(q.Get("from_city")),
		ToCity:      strings.TrimSpace(q.Get("to_city")),
	}

	if raw := strings.TrimSpace(q.Get("airline_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return models.FlightFilter{}, fmt.Errorf("%w: airline_id %q", ErrInvalidQueryParam, raw)
		}
		filter.AirlineID = id
	}

	return filter, nil
}

func (h *Handler) getFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	flight, err := h.services.FlightService.GetPublicFlight(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, flight, http.StatusOK)
}

func (h *Handler) listMyFlights(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	flights, err := h.services.FlightService.ListAirlineFlights(r.Context(), claims.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, flights, http.StatusOK)
}

func (h *Handler) createFlight(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.FlightInput
	if err = h.decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	flight, err := h.services.FlightService.CreateFlight(r.Context(), claims.ID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("flight_id", flight.ID).Int64("airline_id", claims.ID).Msg("flight created")
	utils.WriteJSON(w, flight, http.StatusCreated)
}

// updateFlight runs behind requireFlightOwner, which has already loaded the
// flight and checked its owner.
func (h *Handler) updateFlight(w http.ResponseWriter, r *http.Request) {
	current, ok := utils.GetFlightFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoFlightInContext)
		return
	}

	var input models.FlightInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	flight, err := h.services.FlightService.UpdateFlight(r.Context(), current, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, flight, http.StatusOK)
}

func (h *Handler) deleteFlight(w http.ResponseWriter, r *http.Request) {
	current, ok := utils.GetFlightFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoFlightInContext)
		return
	}

	deletedBookings, err := h.services.FlightService.DeleteFlight(r.Context(), current.ID, current.AirlineID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("flight deleted along with %d booking(s)", deletedBookings),
	}, http.StatusOK)
}
