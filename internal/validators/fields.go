package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFromCountry    = "from_country"
	FieldToCountry      = "to_country"
	FieldFromCity       = "from_city"
	FieldToCity         = "to_city"
	FieldDepartureTime  = "departure_time"
	FieldArrivalTime    = "arrival_time"
	FieldPrice          = "price"
	FieldFlightNumber   = "flight_number"
	FieldBaggage        = "baggage"
	FieldSeatsAvailable = "seats_available"

	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldPassportNumber = "passport_number"
	FieldNationality    = "nationality"
	FieldAge            = "age"

	FieldUsername         = "username"
	FieldEmployeeUsername = "employee_username"
	FieldPassword         = "password"
	FieldEmail            = "email"
)

var defaultFlightFields = []string{
	FieldFromCountry, FieldToCountry, FieldFromCity, FieldToCity,
	FieldDepartureTime, FieldArrivalTime, FieldPrice, FieldFlightNumber,
	FieldBaggage, FieldSeatsAvailable,
}

var defaultBookingFields = []string{
	FieldFirstName, FieldLastName, FieldPassportNumber, FieldNationality,
	FieldAge, FieldEmail,
}
