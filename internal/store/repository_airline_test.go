package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var airlineRowColumns = []string{"id", "name", "logo", "email", "phone", "license", "employee_username", "password", "created_at"}

func TestCreateAirline_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAirlineRepository(db, logger.Nop())

	airline := models.Airline{
		Name:             "SkyJet",
		Logo:             "logo.png",
		Email:            "ops@skyjet.test",
		Phone:            "+100",
		License:          "LIC-1",
		EmployeeUsername: "ops",
		PasswordHash:     "$2a$hash",
	}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO airlines").
		WithArgs(airline.Name, airline.Logo, airline.Email, airline.Phone, airline.License, airline.EmployeeUsername, airline.PasswordHash).
		WillReturnRows(sqlmock.NewRows(airlineRowColumns).
			AddRow(1, airline.Name, airline.Logo, airline.Email, airline.Phone, airline.License, airline.EmployeeUsername, airline.PasswordHash, now))

	created, err := repo.CreateAirline(context.Background(), airline)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "ops", created.EmployeeUsername)
	assert.Equal(t, "$2a$hash", created.PasswordHash)
	assert.Equal(t, now, created.CreatedAt)
	expectationsMet(t, mock)
}

func TestCreateAirline_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAirlineRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO airlines").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAirline(context.Background(), models.Airline{EmployeeUsername: "ops"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	expectationsMet(t, mock)
}

func TestCreateAirline_OtherError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAirlineRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO airlines").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateAirline(context.Background(), models.Airline{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestFindAirlineByUsername(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM airlines").
					WithArgs("ops").
					WillReturnRows(sqlmock.NewRows(airlineRowColumns).
						AddRow(4, "SkyJet", "", "", "", "", "ops", "hash", time.Now()))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM airlines").
					WithArgs("ops").
					WillReturnRows(sqlmock.NewRows(airlineRowColumns))
			},
			wantErr: ErrAirlineNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM airlines").
					WithArgs("ops").
					WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAirlineRepository(db, logger.Nop())
			tt.setup(mock)

			airline, err := repo.FindAirlineByUsername(context.Background(), "ops")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), airline.ID)
			assert.Equal(t, "hash", airline.PasswordHash)
			expectationsMet(t, mock)
		})
	}
}

func TestFindAirlineByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAirlineRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM airlines").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(airlineRowColumns))

	_, err := repo.FindAirlineByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAirlineNotFound)
	expectationsMet(t, mock)
}
