package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrCrewNotFound is returned when a crew member with the requested
// ID does not exist.
var ErrCrewNotFound = errors.New("crew member not found")

// CrewRepo provides CRUD operations over the crew table.
type CrewRepo struct {
	db *sql.DB
}

// NewCrewRepo returns a new CrewRepo bound to the given database.
func NewCrewRepo(db *sql.DB) *CrewRepo { return &CrewRepo{db: db} }

// CrewRow is a crew member collapsed to the derived full name,
// produced for list views.
type CrewRow struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
}

// Create inserts a crew member and populates the generated ID.
func (r *CrewRepo) Create(ctx context.Context, c *model.Crew) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO crew (first_name, last_name) VALUES (?, ?)`,
		c.FirstName, c.LastName)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID returns a single crew member or ErrCrewNotFound.
func (r *CrewRepo) GetByID(ctx context.Context, id uint64) (*model.Crew, error) {
	var c model.Crew
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name FROM crew WHERE id = ?`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCrewNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all crew members with their full names.
func (r *CrewRepo) List(ctx context.Context) ([]CrewRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first_name, last_name FROM crew ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]CrewRow, 0)
	for rows.Next() {
		var c model.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		out = append(out, CrewRow{ID: c.ID, FullName: c.FullName()})
	}
	return out, rows.Err()
}

// Update overwrites an existing crew member's names.
func (r *CrewRepo) Update(ctx context.Context, c *model.Crew) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE crew SET first_name = ?, last_name = ? WHERE id = ?`,
		c.FirstName, c.LastName, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a crew member and, via cascade, their journey
// memberships.
func (r *CrewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crew WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCrewNotFound
	}
	return nil
}
