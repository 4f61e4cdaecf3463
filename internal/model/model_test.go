package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeatsInTrain(t *testing.T) {
	tests := []struct {
		name  string
		train Train
		want  int64
	}{
		{name: "five cargos of twenty", train: Train{CargoNum: 5, PlacesInCargo: 20}, want: 100},
		{name: "single cargo", train: Train{CargoNum: 1, PlacesInCargo: 42}, want: 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.train.SeatsInTrain())
		})
	}
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "Kyiv-Lviv", RouteLabel("Kyiv", "Lviv"))
}

func TestCrewFullName(t *testing.T) {
	c := Crew{FirstName: "Olena", LastName: "Shevchenko"}
	assert.Equal(t, "Olena Shevchenko", c.FullName())
}

func TestJourneyTime(t *testing.T) {
	dep := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	j := Journey{DepartureTime: dep, ArrivalTime: dep.Add(5*time.Hour + 30*time.Minute)}
	assert.Equal(t, 5*time.Hour+30*time.Minute, j.JourneyTime())
}
