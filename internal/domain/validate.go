package domain

import (
	"math"
	"time"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// StraightDistance returns the straight-line distance between two
// stations treating latitude/longitude as plane coordinates.  This is
// deliberately not a geodesic distance; the stored route distance only
// has to clear this planar lower bound.
func StraightDistance(source, destination model.Station) float64 {
	dLat := source.Latitude - destination.Latitude
	dLon := source.Longitude - destination.Longitude
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// ValidateRoute rejects routes whose endpoints coincide or whose
// declared distance is shorter than the straight line between the two
// stations.
func ValidateRoute(source, destination model.Station, distance int64) error {
	if source.ID == destination.ID {
		return newValidationError("destination", "source and destination stations must differ")
	}
	straight := StraightDistance(source, destination)
	if straight > float64(distance) {
		return newValidationError("distance",
			"distance %d is shorter than the straight line between stations (%.2f)", distance, straight)
	}
	return nil
}

// ValidateJourney rejects journeys that do not depart strictly before
// they arrive.
func ValidateJourney(departure, arrival time.Time) error {
	if !departure.Before(arrival) {
		return newValidationError("departure_time", "departure time must be before arrival time")
	}
	return nil
}

// ValidateTicket checks that the requested cargo and seat fall inside
// the train's capacity.  Both ranges are 1-based and inclusive.  The
// returned error carries the offending field name ("cargo" or "seat").
func ValidateTicket(cargo, seat int64, train model.Train) error {
	if cargo < 1 || cargo > train.CargoNum {
		return newValidationError("cargo",
			"cargo must be in range [1, %d], got %d", train.CargoNum, cargo)
	}
	if seat < 1 || seat > train.PlacesInCargo {
		return newValidationError("seat",
			"seat must be in range [1, %d], got %d", train.PlacesInCargo, seat)
	}
	return nil
}
