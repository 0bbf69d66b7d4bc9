package models

import "time"

// Airline is an airline account. EmployeeUsername is the login handle and
// is unique across the "airlines" table.
type Airline struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Name is the public airline name shown next to its flights.
	Name string `json:"name"`

	// Logo is an optional URL or asset reference for the airline logo.
	Logo string `json:"logo"`

	// Email is the contact e-mail of the airline.
	Email string `json:"email"`

	// Phone is the contact phone of the airline.
	Phone string `json:"phone"`

	// License is the operator license number.
	License string `json:"license"`

	// EmployeeUsername is the login handle used to sign in.
	EmployeeUsername string `json:"employee_username"`

	// Password carries the plain-text password on sign-up/sign-in requests.
	// It is never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Airline model.
func (a Airline) TableName() string {
	return "airlines"
}

// Claims returns the identity snapshot embedded into tokens issued for a.
func (a Airline) Claims() Claims {
	return Claims{
		ID:               a.ID,
		Role:             RoleAirline,
		EmployeeUsername: a.EmployeeUsername,
		Name:             a.Name,
	}
}
