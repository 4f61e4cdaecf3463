package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/railway-ticket-service/internal/domain"
	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrOrderNotFound is returned when an order does not exist or does
// not belong to the requesting user.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmptyOrder is returned when an order request carries no ticket
// lines. Nothing is written in that case.
var ErrEmptyOrder = errors.New("order must contain at least one ticket")

// OrderRepo creates and reads orders together with their tickets.
// Order creation is the allocator: one transaction inserts the order
// row and every requested ticket, and either all of them become
// visible or none do. Seat uniqueness is not checked up front; the
// unique key on (journey_id, cargo, seat) decides at insert time,
// which keeps concurrent bookings race-free without any application
// level locking.
type OrderRepo struct {
	db       *sql.DB
	journeys *JourneyRepo
}

// NewOrderRepo returns a new OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB, journeys *JourneyRepo) *OrderRepo {
	return &OrderRepo{db: db, journeys: journeys}
}

// TicketRequest is one requested place in an order.
type TicketRequest struct {
	Cargo     int64  `json:"cargo"`
	Seat      int64  `json:"seat"`
	JourneyID uint64 `json:"journey"`
}

// TicketRow is a booked ticket expanded with its journey summary,
// returned inside order views.
type TicketRow struct {
	ID      uint64     `json:"id"`
	Cargo   int64      `json:"cargo"`
	Seat    int64      `json:"seat"`
	Journey JourneyRef `json:"journey"`
}

// JourneyRef is the journey summary nested under a ticket: route
// label, train name and schedule.
type JourneyRef struct {
	ID            uint64 `json:"id"`
	Route         string `json:"route"`
	Train         string `json:"train"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// OrderDetail is an order with its tickets, returned from creation
// and list endpoints.
type OrderDetail struct {
	ID        uint64      `json:"id"`
	CreatedAt string      `json:"created_at"`
	Tickets   []TicketRow `json:"tickets"`
}

// Create books an order atomically: it opens a transaction, inserts
// the order row, then inserts one ticket per request in input order.
// Each ticket is validated against the train of its journey before
// the insert; a validation failure, a missing journey or a seat
// conflict (ErrSeatTaken) aborts the transaction, so no partial
// order is ever persisted. The first failing line decides the error
// returned to the caller; conflicts are reported immediately and
// never retried here.
func (r *OrderRepo) Create(ctx context.Context, userID uint64, requests []TicketRequest) (*OrderDetail, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyOrder
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `INSERT INTO orders (user_id) VALUES (?)`, userID)
	if err != nil {
		return nil, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, req := range requests {
		train, err := r.journeys.TrainForJourneyTx(ctx, tx, req.JourneyID)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateTicket(req.Cargo, req.Seat, *train); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tickets (cargo, seat, journey_id, order_id) VALUES (?, ?, ?, ?)`,
			req.Cargo, req.Seat, req.JourneyID, orderID); err != nil {
			if isDuplicateKey(err) {
				return nil, ErrSeatTaken
			}
			return nil, err
		}
	}

	var createdAt time.Time
	if err := tx.QueryRowContext(ctx,
		`SELECT created_at FROM orders WHERE id = ?`, orderID).Scan(&createdAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	detail, err := r.GetByIDForUser(ctx, uint64(orderID), userID)
	if err != nil {
		// The order is committed; fall back to a minimal view.
		return &OrderDetail{ID: uint64(orderID), CreatedAt: formatTime(createdAt), Tickets: []TicketRow{}}, nil
	}
	return detail, nil
}

// GetByIDForUser returns one order with its tickets, restricted to
// the owning user. Missing and foreign orders are indistinguishable
// to the caller: both return ErrOrderNotFound.
func (r *OrderRepo) GetByIDForUser(ctx context.Context, orderID, userID uint64) (*OrderDetail, error) {
	var det OrderDetail
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM orders WHERE id = ? AND user_id = ?`, orderID, userID).
		Scan(&det.ID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	det.CreatedAt = formatTime(createdAt)
	det.Tickets = []TicketRow{}

	tickets, err := r.ticketsForOrders(ctx, []any{det.ID})
	if err != nil {
		return nil, err
	}
	det.Tickets = append(det.Tickets, tickets[det.ID]...)
	return &det, nil
}

// ListByUser returns the user's orders newest first, each with its
// tickets. Tickets for the whole page are loaded in one query.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uint64, page, pageSize int) ([]OrderDetail, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := pageSize
	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at FROM orders WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	details := make([]OrderDetail, 0, limit)
	index := make(map[uint64]int)
	ids := make([]any, 0, limit)
	for rows.Next() {
		var d OrderDetail
		var createdAt time.Time
		if err := rows.Scan(&d.ID, &createdAt); err != nil {
			return nil, 0, err
		}
		d.CreatedAt = formatTime(createdAt)
		d.Tickets = []TicketRow{}
		index[d.ID] = len(details)
		details = append(details, d)
		ids = append(ids, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(details) == 0 {
		return details, total, nil
	}

	tickets, err := r.ticketsForOrders(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for orderID, rows := range tickets {
		if idx, ok := index[orderID]; ok {
			details[idx].Tickets = rows
		}
	}
	return details, total, nil
}

// ticketsForOrders loads the tickets of the given orders with their
// journey summaries, grouped by order ID.
func (r *OrderRepo) ticketsForOrders(ctx context.Context, orderIDs []any) (map[uint64][]TicketRow, error) {
	ph := make([]string, len(orderIDs))
	for i := range orderIDs {
		ph[i] = "?"
	}
	q := `SELECT tk.order_id, tk.id, tk.cargo, tk.seat,
	             j.id, j.departure_time, j.arrival_time,
	             s.name, d.name, t.name
	      FROM tickets tk
	      JOIN journeys j ON j.id = tk.journey_id
	      JOIN routes r ON r.id = j.route_id
	      JOIN stations s ON s.id = r.source_station_id
	      JOIN stations d ON d.id = r.destination_station_id
	      JOIN trains t ON t.id = j.train_id
	      WHERE tk.order_id IN (` + strings.Join(ph, ",") + `)
	      ORDER BY tk.order_id, tk.cargo, tk.seat`
	rows, err := r.db.QueryContext(ctx, q, orderIDs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uint64][]TicketRow)
	for rows.Next() {
		var orderID uint64
		var row TicketRow
		var dep, arr time.Time
		var srcName, dstName string
		if err := rows.Scan(&orderID, &row.ID, &row.Cargo, &row.Seat,
			&row.Journey.ID, &dep, &arr, &srcName, &dstName, &row.Journey.Train); err != nil {
			return nil, err
		}
		row.Journey.Route = model.RouteLabel(srcName, dstName)
		row.Journey.DepartureTime = formatTime(dep)
		row.Journey.ArrivalTime = formatTime(arr)
		out[orderID] = append(out[orderID], row)
	}
	return out, rows.Err()
}

// DeleteByIDForUser removes an order owned by the user; its tickets
// go with it through the foreign key cascade. Deleting a foreign or
// missing order returns ErrOrderNotFound.
func (r *OrderRepo) DeleteByIDForUser(ctx context.Context, orderID, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM orders WHERE id = ? AND user_id = ?`, orderID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
