package http

import (
	"net/http"

	"github.com/MKhiriev/go-flight-booking/internal/utils"
	"github.com/MKhiriev/go-flight-booking/models"
)

func (h *Handler) getCurrentAirline(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeAirline(w, r, claims.ID)
}

// getAirline runs behind requireSelf("airlineId").
func (h *Handler) getAirline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "airlineId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeAirline(w, r, id)
}

func (h *Handler) writeAirline(w http.ResponseWriter, r *http.Request, id int64) {
	airline, err := h.services.AirlineService.GetAirline(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.AirlineResponse{Airline: airline}, http.StatusOK)
}
