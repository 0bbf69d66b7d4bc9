package http

import (
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. Every route is registered with its full path so
// that CheckHTTPMethod can match patterns against request paths.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/sign-up-user", h.signUpTraveler)
		r.Post("/auth/sign-in-user", h.signInTraveler)
		r.Post("/companyies/sign-up-airlines", h.signUpAirline)
		r.Post("/companyies/sign-in-airlines", h.signInAirline)

		r.Get("/flights", h.listFlights)
		r.Get("/flights/{id}", h.getFlight)

		r.Get("/version", h.getServerVersion)
	})

	// airline routes
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		r.Use(h.requireRole(models.RoleAirline))

		r.Get("/flights/my-flights", h.listMyFlights)
		r.Post("/flights/new", h.createFlight)
		r.With(h.requireFlightOwner("id")).Put("/flights/{id}", h.updateFlight)
		r.With(h.requireFlightOwner("id")).Delete("/flights/{id}", h.deleteFlight)

		r.Get("/companyies/currentAirline", h.getCurrentAirline)
		r.Get("/companyies/bookings", h.listAirlineBookings)
		r.With(h.requireSelf("airlineId")).Get("/companyies/{airlineId}", h.getAirline)
		r.With(h.requireFlightOwner("flightId")).Get("/companyies/flights/{flightId}/bookings", h.listFlightBookings)
	})

	// traveler routes
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		r.Use(h.requireRole(models.RoleTraveler))

		// {id} is the flight id on POST and the booking id on DELETE.
		r.Post("/userBooking/{id}", h.createBooking)
		r.Get("/userBooking/my-bookings", h.listMyBookings)
		r.Delete("/userBooking/{id}", h.deleteBooking)

		r.Get("/users/currentUser", h.getCurrentTraveler)
		r.Put("/users/profile", h.updateProfile)
		r.Put("/users/profile-photo", h.updatePhoto)
		r.Delete("/users/profile", h.deleteProfile)
		r.With(h.requireSelf("userId")).Get("/users/{userId}", h.getTraveler)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
