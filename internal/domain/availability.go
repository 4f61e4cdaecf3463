package domain

import "github.com/iliyamo/railway-ticket-service/internal/model"

// Place identifies a single physical seat on a journey as the pair of
// 1-based cargo and seat indexes.  Detail views expose the already
// booked places so clients can render a seat map.
type Place struct {
	Cargo int64 `json:"cargo"`
	Seat  int64 `json:"seat"`
}

// TicketsAvailable computes the remaining capacity of a journey from
// the train's total seats and the number of tickets booked so far.
// The count is always derived at query time; it is never stored.
func TicketsAvailable(train model.Train, booked int64) int64 {
	return train.SeatsInTrain() - booked
}
