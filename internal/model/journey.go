package model

import "time"

// Journey is a scheduled run of a train over a route.  Departure
// must be strictly before arrival.  Remaining capacity is always
// derived at query time from the train's capacity and the number
// of booked tickets, never cached on the row.  Corresponds to a
// row in the `journeys` table.
//
// Fields:
//  ID            – primary key identifier.
//  RouteID       – route being driven.
//  TrainID       – train assigned to the run.
//  DepartureTime – when the journey leaves the source station.
//  ArrivalTime   – when the journey reaches the destination.
type Journey struct {
	ID            uint64    // journeys.id
	RouteID       uint64    // journeys.route_id
	TrainID       uint64    // journeys.train_id
	DepartureTime time.Time // journeys.departure_time
	ArrivalTime   time.Time // journeys.arrival_time
}

// JourneyTime returns the travel duration of the journey.
func (j Journey) JourneyTime() time.Duration {
	return j.ArrivalTime.Sub(j.DepartureTime)
}
