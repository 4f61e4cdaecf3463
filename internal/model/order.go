package model

import "time"

// Order groups the tickets a user booked in one transaction.
// Orders are immutable after creation; deleting an order removes
// its tickets through the foreign key cascade.  Corresponds to a
// row in the `orders` table.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who placed the order.
//  CreatedAt – creation timestamp, set once.
type Order struct {
	ID        uint64    // orders.id
	UserID    uint64    // orders.user_id
	CreatedAt time.Time // orders.created_at
}

// Ticket reserves a single physical place (cargo, seat) on a
// journey.  The (journey_id, cargo, seat) triple is unique at
// the storage layer; every ticket belongs to exactly one order.
// Corresponds to a row in the `tickets` table.
//
// Fields:
//  ID        – primary key identifier.
//  Cargo     – 1-based cargo index within the train.
//  Seat      – 1-based place index within the cargo.
//  JourneyID – journey the place is booked on.
//  OrderID   – owning order.
type Ticket struct {
	ID        uint64 // tickets.id
	Cargo     int64  // tickets.cargo
	Seat      int64  // tickets.seat
	JourneyID uint64 // tickets.journey_id
	OrderID   uint64 // tickets.order_id
}
