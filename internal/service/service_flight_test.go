package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/mock"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/internal/validators"
	"github.com/MKhiriev/go-flight-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validFlightInput() models.FlightInput {
	return models.FlightInput{
		FromCountry:    "France",
		ToCountry:      "Italy",
		FromCity:       "Paris",
		ToCity:         "Rome",
		DepartureTime:  "2026-06-01T08:00:00Z",
		ArrivalTime:    "2026-06-01T10:00:00Z",
		Price:          models.NewFlexNumber(99.5),
		FlightNumber:   "SJ100",
		SeatsAvailable: models.NewFlexNumber(150),
	}
}

func TestFlightService_CreateFlight_ConvertsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	flights := mock.NewMockFlightRepository(ctrl)
	svc := NewFlightValidationService().Wrap(NewFlightService(flights, logger.Nop()))

	flights.EXPECT().CreateFlight(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.Flight) (models.Flight, error) {
			assert.Equal(t, int64(3), f.AirlineID)
			assert.Equal(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC), f.DepartureTime)
			assert.Equal(t, 99.5, f.Price)
			assert.Equal(t, 0, f.Baggage, "baggage defaults to 0")
			assert.False(t, f.Wifi, "wifi defaults to false")
			f.ID = 10
			return f, nil
		},
	)

	created, err := svc.CreateFlight(context.Background(), 3, validFlightInput())
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestFlightValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockFlightService(ctrl)
	svc := NewFlightValidationService().Wrap(inner)

	inner.EXPECT().CreateFlight(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	inner.EXPECT().UpdateFlight(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	missingPrice := validFlightInput()
	missingPrice.Price = models.FlexNumber{}
	_, err := svc.CreateFlight(context.Background(), 3, missingPrice)
	assert.ErrorIs(t, err, validators.ErrInvalidPrice)
	assert.ErrorIs(t, err, validators.ErrValidation)

	badDate := validFlightInput()
	badDate.ArrivalTime = "tomorrow"
	_, err = svc.UpdateFlight(context.Background(), models.Flight{ID: 1, AirlineID: 3}, badDate)
	assert.ErrorIs(t, err, validators.ErrInvalidArrivalTime)
}

func TestFlightValidationService_PassesReadsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockFlightService(ctrl)
	svc := NewFlightValidationService().Wrap(inner)
	ctx := context.Background()
	filter := models.FlightFilter{FromCity: "Paris"}

	inner.EXPECT().ListFlights(ctx, filter).Return([]models.PublicFlight{{ID: 1}}, nil)
	inner.EXPECT().GetPublicFlight(ctx, int64(1)).Return(models.PublicFlight{ID: 1}, nil)
	inner.EXPECT().DeleteFlight(ctx, int64(1), int64(3)).Return(int64(2), nil)

	flights, err := svc.ListFlights(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, flights, 1)

	_, err = svc.GetPublicFlight(ctx, 1)
	require.NoError(t, err)

	removed, err := svc.DeleteFlight(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestFlightService_UpdateFlight_KeepsIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	flights := mock.NewMockFlightRepository(ctrl)
	svc := NewFlightService(flights, logger.Nop())

	input := validFlightInput()
	input.Price = models.NewFlexNumber(200)

	flights.EXPECT().UpdateFlight(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.Flight) (models.Flight, error) {
			assert.Equal(t, int64(8), f.ID)
			assert.Equal(t, int64(3), f.AirlineID)
			assert.Equal(t, float64(200), f.Price)
			return f, nil
		},
	)

	updated, err := svc.UpdateFlight(context.Background(), models.Flight{ID: 8, AirlineID: 3, Price: 10}, input)
	require.NoError(t, err)
	assert.Equal(t, float64(200), updated.Price)
}

func TestFlightService_DeleteFlight_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	flights := mock.NewMockFlightRepository(ctrl)
	svc := NewFlightService(flights, logger.Nop())

	flights.EXPECT().DeleteFlight(gomock.Any(), int64(8), int64(3)).Return(int64(0), store.ErrFlightNotFound)

	_, err := svc.DeleteFlight(context.Background(), 8, 3)
	assert.ErrorIs(t, err, store.ErrFlightNotFound)
}
