package service

// FlightServiceWrapper defines middleware composition for FlightService.
// Implementations wrap an existing FlightService to add behavior such as
// validating.
type FlightServiceWrapper interface {
	Wrap(FlightService) FlightService
}

// BookingServiceWrapper defines middleware composition for BookingService.
type BookingServiceWrapper interface {
	Wrap(BookingService) BookingService
}
