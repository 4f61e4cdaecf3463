package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/railway-ticket-service/internal/domain"
	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrRouteNotFound is returned when a route with the requested ID
// does not exist.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepo provides CRUD and filtered listing over the routes
// table.  Writes re-run the geometry validator against the stored
// station coordinates so an invalid route cannot reach the table no
// matter which entry point produced it.
type RouteRepo struct {
	db *sql.DB
}

// NewRouteRepo returns a new RouteRepo bound to the given database.
func NewRouteRepo(db *sql.DB) *RouteRepo { return &RouteRepo{db: db} }

// RouteRow is a route annotated with its derived label, produced for
// list views.
type RouteRow struct {
	ID       uint64 `json:"id"`
	Route    string `json:"route"`
	Distance int64  `json:"distance"`
}

// RouteDetail is a route expanded with both station records,
// produced for detail views.
type RouteDetail struct {
	ID          uint64        `json:"id"`
	Source      model.Station `json:"source"`
	Destination model.Station `json:"destination"`
	Distance    int64         `json:"distance"`
}

// loadEndpoints resolves both stations of a route in one query.
func (r *RouteRepo) loadEndpoints(ctx context.Context, sourceID, destinationID uint64) (model.Station, model.Station, error) {
	var src, dst model.Station
	err := r.db.QueryRowContext(ctx,
		`SELECT s.id, s.name, s.latitude, s.longitude, d.id, d.name, d.latitude, d.longitude
		 FROM stations s, stations d
		 WHERE s.id = ? AND d.id = ?`, sourceID, destinationID).
		Scan(&src.ID, &src.Name, &src.Latitude, &src.Longitude,
			&dst.ID, &dst.Name, &dst.Latitude, &dst.Longitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return src, dst, ErrStationNotFound
		}
		return src, dst, err
	}
	return src, dst, nil
}

// Create validates the route geometry against the referenced
// stations and inserts it, populating the generated ID.
func (r *RouteRepo) Create(ctx context.Context, route *model.Route) error {
	src, dst, err := r.loadEndpoints(ctx, route.SourceID, route.DestinationID)
	if err != nil {
		return err
	}
	if err := domain.ValidateRoute(src, dst, route.Distance); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO routes (source_station_id, destination_station_id, distance) VALUES (?, ?, ?)`,
		route.SourceID, route.DestinationID, route.Distance)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	route.ID = uint64(id)
	return nil
}

// GetByID returns a bare route row or ErrRouteNotFound.
func (r *RouteRepo) GetByID(ctx context.Context, id uint64) (*model.Route, error) {
	var route model.Route
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_station_id, destination_station_id, distance FROM routes WHERE id = ?`, id).
		Scan(&route.ID, &route.SourceID, &route.DestinationID, &route.Distance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

// GetDetail returns a route with both stations expanded, or
// ErrRouteNotFound.
func (r *RouteRepo) GetDetail(ctx context.Context, id uint64) (*RouteDetail, error) {
	var d RouteDetail
	err := r.db.QueryRowContext(ctx,
		`SELECT r.id, r.distance,
		        s.id, s.name, s.latitude, s.longitude,
		        d.id, d.name, d.latitude, d.longitude
		 FROM routes r
		 JOIN stations s ON s.id = r.source_station_id
		 JOIN stations d ON d.id = r.destination_station_id
		 WHERE r.id = ?`, id).
		Scan(&d.ID, &d.Distance,
			&d.Source.ID, &d.Source.Name, &d.Source.Latitude, &d.Source.Longitude,
			&d.Destination.ID, &d.Destination.Name, &d.Destination.Latitude, &d.Destination.Longitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List returns routes with their derived labels.  Non-empty source
// and destination parameters narrow the result to routes whose
// endpoint names contain the given substrings (case-insensitive,
// combined with AND).  Rows are de-duplicated before being returned.
func (r *RouteRepo) List(ctx context.Context, source, destination string) ([]RouteRow, error) {
	where := []string{}
	args := []any{}
	if source != "" {
		where = append(where, "LOWER(s.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(source)+"%")
	}
	if destination != "" {
		where = append(where, "LOWER(d.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(destination)+"%")
	}
	q := `SELECT DISTINCT r.id, s.name, d.name, r.distance
	      FROM routes r
	      JOIN stations s ON s.id = r.source_station_id
	      JOIN stations d ON d.id = r.destination_station_id`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]RouteRow, 0)
	for rows.Next() {
		var row RouteRow
		var srcName, dstName string
		if err := rows.Scan(&row.ID, &srcName, &dstName, &row.Distance); err != nil {
			return nil, err
		}
		row.Route = model.RouteLabel(srcName, dstName)
		out = append(out, row)
	}
	return out, rows.Err()
}

// Update validates and overwrites an existing route.
func (r *RouteRepo) Update(ctx context.Context, route *model.Route) error {
	src, dst, err := r.loadEndpoints(ctx, route.SourceID, route.DestinationID)
	if err != nil {
		return err
	}
	if err := domain.ValidateRoute(src, dst, route.Distance); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE routes SET source_station_id = ?, destination_station_id = ?, distance = ? WHERE id = ?`,
		route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, route.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a route; its journeys disappear through the foreign
// key cascade.
func (r *RouteRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRouteNotFound
	}
	return nil
}
