// Package repository defines error values that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between failure scenarios. For
// example, ErrSeatTaken indicates that a requested (cargo, seat,
// journey) place is already booked.
package repository

import (
	"errors"
	"strings"
)

// ErrSeatTaken is returned when inserting a ticket trips the unique
// key on (journey_id, cargo, seat). The whole order transaction is
// rolled back when this happens. Handlers should translate this into
// an HTTP 409 response.
var ErrSeatTaken = errors.New("seat already taken")

// ErrDuplicateName is returned when an insert or update violates a
// uniqueness constraint on a name-like column (train type name,
// train cargo_num). Handlers should translate this into an HTTP
// 409 response.
var ErrDuplicateName = errors.New("duplicate value")

// isDuplicateKey reports whether err is a MySQL duplicate-entry
// error (code 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
