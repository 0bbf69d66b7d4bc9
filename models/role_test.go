package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "airline", input: "airline", want: RoleAirline},
		{name: "traveler is serialized as user", input: "user", want: RoleTraveler},
		{name: "admin is not a role", input: "admin", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Airline", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				assert.Equal(t, RoleUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(struct {
		Role Role `json:"role"`
	}{Role: RoleTraveler})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user"}`, string(b))

	var decoded struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"airline"}`), &decoded))
	assert.Equal(t, RoleAirline, decoded.Role)
}

func TestRole_MarshalUnknownFails(t *testing.T) {
	_, err := json.Marshal(RoleUnknown)
	assert.Error(t, err)
}

func TestRole_UnmarshalUnknownFails(t *testing.T) {
	var r Role
	err := json.Unmarshal([]byte(`"superuser"`), &r)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestAccountClaims(t *testing.T) {
	a := Airline{ID: 7, Name: "United", EmployeeUsername: "ual1"}
	c := a.Claims()
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, RoleAirline, c.Role)
	assert.Equal(t, "ual1", c.EmployeeUsername)
	assert.Equal(t, "United", c.Name)

	u := Traveler{ID: 3, Username: "amy"}
	c = u.Claims()
	assert.Equal(t, int64(3), c.ID)
	assert.Equal(t, RoleTraveler, c.Role)
	assert.Equal(t, "amy", c.Username)
}
