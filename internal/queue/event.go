// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderConfirmedEvent is published when an order is successfully
// booked. It carries enough detail for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type OrderConfirmedEvent struct {
	OrderID     uint64        `json:"order_id"`
	UserID      uint64        `json:"user_id"`
	Tickets     []TicketEntry `json:"tickets"`
	ConfirmedAt string        `json:"confirmed_at"`
}

// TicketEntry is one booked place inside an order event.
type TicketEntry struct {
	JourneyID     uint64 `json:"journey_id"`
	Route         string `json:"route"`
	Train         string `json:"train"`
	DepartureTime string `json:"departure_time"`
	Cargo         int64  `json:"cargo"`
	Seat          int64  `json:"seat"`
}
