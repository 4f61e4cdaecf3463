package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

func TestStraightDistance(t *testing.T) {
	a := model.Station{ID: 1, Name: "A", Latitude: 0, Longitude: 0}
	b := model.Station{ID: 2, Name: "B", Latitude: 3, Longitude: 4}

	assert.InDelta(t, 5.0, StraightDistance(a, b), 1e-9)
	assert.InDelta(t, 5.0, StraightDistance(b, a), 1e-9, "distance is symmetric")
	assert.Zero(t, StraightDistance(a, a))
}

func TestValidateRoute(t *testing.T) {
	a := model.Station{ID: 1, Name: "A", Latitude: 0, Longitude: 0}
	b := model.Station{ID: 2, Name: "B", Latitude: 0, Longitude: 3}

	tests := []struct {
		name        string
		source      model.Station
		destination model.Station
		distance    int64
		wantField   string
	}{
		{name: "distance shorter than straight line", source: a, destination: b, distance: 2, wantField: "distance"},
		{name: "distance equal to straight line", source: a, destination: b, distance: 3},
		{name: "distance longer than straight line", source: a, destination: b, distance: 10},
		{name: "same station both ends", source: a, destination: a, distance: 10, wantField: "destination"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRoute(tc.source, tc.destination, tc.distance)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestValidateJourney(t *testing.T) {
	dep := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateJourney(dep, dep.Add(2*time.Hour)))

	var ve *ValidationError
	err := ValidateJourney(dep, dep.Add(-time.Minute))
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "departure_time", ve.Field)

	err = ValidateJourney(dep, dep)
	require.ErrorAs(t, err, &ve, "equal times are not strictly ordered")
	assert.Equal(t, "departure_time", ve.Field)
}

func TestValidateTicket(t *testing.T) {
	train := model.Train{ID: 1, Name: "Express", CargoNum: 5, PlacesInCargo: 20}

	tests := []struct {
		name      string
		cargo     int64
		seat      int64
		wantField string
	}{
		{name: "first seat of first cargo", cargo: 1, seat: 1},
		{name: "last seat of last cargo", cargo: 5, seat: 20},
		{name: "cargo above range", cargo: 6, seat: 1, wantField: "cargo"},
		{name: "cargo below range", cargo: 0, seat: 1, wantField: "cargo"},
		{name: "seat above range", cargo: 5, seat: 21, wantField: "seat"},
		{name: "seat below range", cargo: 1, seat: 0, wantField: "seat"},
		{name: "both out of range reports cargo first", cargo: 9, seat: 99, wantField: "cargo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTicket(tc.cargo, tc.seat, train)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := newValidationError("distance", "distance %d is too short", 2)
	assert.EqualError(t, err, "distance: distance 2 is too short")
}
