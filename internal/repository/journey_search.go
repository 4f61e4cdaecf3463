package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// JourneySearchQuery defines filters & pagination for listing journeys.
type JourneySearchQuery struct {
	Source       string
	Destination  string
	TrainTypeIDs []uint64
	Page         int
	PageSize     int
}

// JourneyRow is a journey collapsed for list views: route label,
// train name, crew full names and the derived remaining capacity.
type JourneyRow struct {
	ID               uint64   `json:"id"`
	Route            string   `json:"route"`
	Train            string   `json:"train"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	Crew             []string `json:"crew"`
	TicketsAvailable int64    `json:"tickets_available"`
	TrainImage       *string  `json:"train_image,omitempty"`
}

// ParseIDList splits a comma-separated list of numeric IDs, e.g.
// "1,3". Blank segments are skipped; a malformed segment fails the
// whole parse.
func ParseIDList(raw string) ([]uint64, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, n)
	}
	return ids, true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Search lists journeys matching the query. Source and destination
// narrow by case-insensitive substring on the route's endpoint
// names; TrainTypeIDs is a membership test on the train's type. All
// filters combine with AND, and an omitted filter applies no
// constraint. Remaining capacity is computed per row in SQL
// (capacity minus booked tickets), never cached. Results are
// de-duplicated before pagination and ordered by departure time.
func (r *JourneyRepo) Search(ctx context.Context, q JourneySearchQuery) ([]JourneyRow, int64, error) {
	where := []string{}
	args := []any{}

	if q.Source != "" {
		where = append(where, "LOWER(s.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Source)+"%")
	}
	if q.Destination != "" {
		where = append(where, "LOWER(d.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Destination)+"%")
	}
	if len(q.TrainTypeIDs) > 0 {
		ph := make([]string, len(q.TrainTypeIDs))
		for i, id := range q.TrainTypeIDs {
			ph[i] = "?"
			args = append(args, id)
		}
		where = append(where, "t.train_type_id IN ("+strings.Join(ph, ",")+")")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(DISTINCT j.id)
		FROM journeys j
		JOIN routes r ON r.id = j.route_id
		JOIN stations s ON s.id = r.source_station_id
		JOIN stations d ON d.id = r.destination_station_id
		JOIN trains t ON t.id = j.train_id
		WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT DISTINCT
			j.id,
			s.name,
			d.name,
			t.name,
			t.image_path,
			j.departure_time,
			j.arrival_time,
			t.cargo_num * t.places_in_cargo
				- (SELECT COUNT(*) FROM tickets tk WHERE tk.journey_id = j.id) AS tickets_available
		FROM journeys j
		JOIN routes r ON r.id = j.route_id
		JOIN stations s ON s.id = r.source_station_id
		JOIN stations d ON d.id = r.destination_station_id
		JOIN trains t ON t.id = j.train_id
		WHERE ` + cond + `
		ORDER BY j.departure_time ASC, j.id ASC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]JourneyRow, 0, limit)
	ids := make([]any, 0, limit)
	index := make(map[uint64]int)
	for rows.Next() {
		var row JourneyRow
		var srcName, dstName string
		var img *string
		var dep, arr time.Time
		if err := rows.Scan(&row.ID, &srcName, &dstName, &row.Train, &img,
			&dep, &arr, &row.TicketsAvailable); err != nil {
			return nil, 0, err
		}
		row.Route = model.RouteLabel(srcName, dstName)
		row.DepartureTime = formatTime(dep)
		row.ArrivalTime = formatTime(arr)
		row.TrainImage = img
		row.Crew = []string{}
		index[row.ID] = len(out)
		out = append(out, row)
		ids = append(ids, row.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(out) == 0 {
		return out, total, nil
	}

	// Populate crew names for the whole page in a single query.
	ph := make([]string, len(ids))
	for i := range ids {
		ph[i] = "?"
	}
	crewSQL := `SELECT jc.journey_id, c.first_name, c.last_name
		FROM journey_crew jc
		JOIN crew c ON c.id = jc.crew_id
		WHERE jc.journey_id IN (` + strings.Join(ph, ",") + `)
		ORDER BY jc.journey_id, c.id`
	crows, err := r.db.QueryContext(ctx, crewSQL, ids...)
	if err != nil {
		return nil, 0, err
	}
	defer crows.Close()
	for crows.Next() {
		var jid uint64
		var c model.Crew
		if err := crows.Scan(&jid, &c.FirstName, &c.LastName); err != nil {
			return nil, 0, err
		}
		if idx, ok := index[jid]; ok {
			out[idx].Crew = append(out[idx].Crew, c.FullName())
		}
	}
	if err := crows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
