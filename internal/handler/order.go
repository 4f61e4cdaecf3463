package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/queue"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
	queue_publisher "github.com/iliyamo/railway-ticket-service/internal/service"
)

// OrderHandler serves the customer booking endpoints. Orders are
// always scoped to the authenticated user.
type OrderHandler struct {
	Orders *repository.OrderRepo
}

// NewOrderHandler wires the booking endpoints to the order repository.
func NewOrderHandler(orders *repository.OrderRepo) *OrderHandler {
	if orders == nil {
		panic("handler: NewOrderHandler requires a non-nil order repository")
	}
	return &OrderHandler{Orders: orders}
}

// CreateOrder handles POST /v1/orders. The body carries the ticket
// lines; the whole order books atomically or not at all. A seat
// conflict comes back as 409 and is never retried server side.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Tickets []repository.TicketRequest `json:"tickets"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	detail, err := h.Orders.Create(c.Request().Context(), userID, body.Tickets)
	if err != nil {
		if handled, resp := validationJSON(c, err); handled {
			return resp
		}
		switch {
		case errors.Is(err, repository.ErrEmptyOrder):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrJourneyNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "journey not found"})
		case errors.Is(err, repository.ErrSeatTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create order"})
	}

	// Best effort: the booking is committed whether or not the event
	// reaches the broker.
	ev := queue.OrderConfirmedEvent{
		OrderID:     detail.ID,
		UserID:      userID,
		Tickets:     make([]queue.TicketEntry, 0, len(detail.Tickets)),
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, t := range detail.Tickets {
		ev.Tickets = append(ev.Tickets, queue.TicketEntry{
			JourneyID:     t.Journey.ID,
			Route:         t.Journey.Route,
			Train:         t.Journey.Train,
			DepartureTime: t.Journey.DepartureTime,
			Cargo:         t.Cargo,
			Seat:          t.Seat,
		})
	}
	_ = queue_publisher.PublishOrderConfirmed(c.Request().Context(), ev)

	return c.JSON(http.StatusCreated, detail)
}

// ListOrders handles GET /v1/orders: the user's orders, newest first,
// paginated.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	page, pageSize := pageParams(c)
	orders, total, err := h.Orders.ListByUser(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load orders"})
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: orders, Total: total, Page: page, PageSize: pageSize})
}

// GetOrder handles GET /v1/orders/:id. A foreign order is
// indistinguishable from a missing one.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	detail, err := h.Orders.GetByIDForUser(c.Request().Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load order"})
	}
	return c.JSON(http.StatusOK, detail)
}

// DeleteOrder handles DELETE /v1/orders/:id. Cancelling frees all of
// the order's seats through the ticket cascade.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	if err := h.Orders.DeleteByIDForUser(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete order"})
	}
	return c.NoContent(http.StatusNoContent)
}
