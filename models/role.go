package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role identifies which account table an authenticated identity belongs to.
// It is a closed set: only [RoleAirline] and [RoleTraveler] are valid.
type Role uint8

const (
	// RoleUnknown is the zero value and never appears in a valid token.
	RoleUnknown Role = iota

	// RoleAirline is carried by tokens issued to airline employees.
	RoleAirline

	// RoleTraveler is carried by tokens issued to travelers.
	// It is serialized as "user" to stay wire compatible with existing clients.
	RoleTraveler
)

// ErrUnknownRole is returned when a role string is neither "airline" nor "user".
var ErrUnknownRole = errors.New("unknown role")

const (
	roleAirlineName  = "airline"
	roleTravelerName = "user"
)

// ParseRole converts the wire representation of a role into a [Role].
func ParseRole(s string) (Role, error) {
	switch s {
	case roleAirlineName:
		return RoleAirline, nil
	case roleTravelerName:
		return RoleTraveler, nil
	default:
		return RoleUnknown, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// String returns the wire representation of r.
func (r Role) String() string {
	switch r {
	case RoleAirline:
		return roleAirlineName
	case RoleTraveler:
		return roleTravelerName
	default:
		return ""
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAirline || r == RoleTraveler
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrUnknownRole
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	role, err := ParseRole(s)
	if err != nil {
		return err
	}

	*r = role
	return nil
}
