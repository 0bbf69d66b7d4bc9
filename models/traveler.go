package models

import "time"

// Traveler is a traveler (end user) account. Username is the login handle
// and is unique across the "users" table.
type Traveler struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Username is the login handle, also shown as the display name.
	Username string `json:"username"`

	// Email is an optional contact address.
	Email string `json:"email"`

	// Photo is the name of the stored profile photo inside the photo
	// directory. Only the photo upload sets it.
	Photo string `json:"photo"`

	// Role is always [RoleTraveler] for rows of this table.
	Role Role `json:"role"`

	// Password carries the plain-text password on sign-up/sign-in requests.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Traveler model.
func (t Traveler) TableName() string {
	return "users"
}

// Claims returns the identity snapshot embedded into tokens issued for t.
func (t Traveler) Claims() Claims {
	return Claims{
		ID:       t.ID,
		Role:     RoleTraveler,
		Username: t.Username,
	}
}

// ProfileUpdate holds the mutable traveler profile fields. The update is a
// full replace: empty values overwrite stored ones. A "photo" key in the
// body is ignored; the photo changes through the upload endpoint only.
type ProfileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
