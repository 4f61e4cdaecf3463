package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrStationNotFound is returned when a station with the requested
// ID does not exist.
var ErrStationNotFound = errors.New("station not found")

// StationRepo provides CRUD operations over the stations table.
type StationRepo struct {
	db *sql.DB
}

// NewStationRepo returns a new StationRepo bound to the given database.
func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

// Create inserts a station and populates its generated ID.
func (r *StationRepo) Create(ctx context.Context, s *model.Station) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stations (name, latitude, longitude) VALUES (?, ?, ?)`,
		s.Name, s.Latitude, s.Longitude)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID returns a single station or ErrStationNotFound.
func (r *StationRepo) GetByID(ctx context.Context, id uint64) (*model.Station, error) {
	var s model.Station
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, latitude, longitude FROM stations WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all stations ordered by ID.
func (r *StationRepo) List(ctx context.Context) ([]model.Station, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, latitude, longitude FROM stations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Station, 0)
	for rows.Next() {
		var s model.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update overwrites an existing station's fields.
func (r *StationRepo) Update(ctx context.Context, s *model.Station) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stations SET name = ?, latitude = ?, longitude = ? WHERE id = ?`,
		s.Name, s.Latitude, s.Longitude, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is zero both for missing rows and no-op updates;
		// distinguish by probing for existence.
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a station. Routes referencing it disappear through
// the foreign key cascade.
func (r *StationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStationNotFound
	}
	return nil
}
