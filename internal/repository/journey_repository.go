package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/railway-ticket-service/internal/domain"
	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrJourneyNotFound is returned when a journey with the requested
// ID does not exist.
var ErrJourneyNotFound = errors.New("journey not found")

// JourneyRepo provides CRUD, crew membership and seat-map queries
// over the journeys table.  Writes re-run the timing validator so an
// inverted schedule cannot reach the table regardless of the entry
// point.  Filtered listing lives in journey_search.go.
type JourneyRepo struct {
	db *sql.DB
}

// NewJourneyRepo returns a new JourneyRepo bound to the given database.
func NewJourneyRepo(db *sql.DB) *JourneyRepo { return &JourneyRepo{db: db} }

// JourneyDetail is a journey expanded with its route, train, crew
// and seat map, produced for detail views.  TakenPlaces holds the
// exact (cargo, seat) pairs already booked, ordered by cargo then
// seat, so a client can render the full map.
type JourneyDetail struct {
	ID               uint64         `json:"id"`
	Route            RouteDetail    `json:"route"`
	Train            TrainDetail    `json:"train"`
	DepartureTime    string         `json:"departure_time"`
	ArrivalTime      string         `json:"arrival_time"`
	Crew             []string       `json:"crew"`
	TicketsAvailable int64          `json:"tickets_available"`
	TakenPlaces      []domain.Place `json:"taken_places"`
}

// Create validates the schedule and inserts a journey, populating
// the generated ID.  The referenced route and train must exist; a
// missing reference surfaces as the corresponding not-found error.
func (r *JourneyRepo) Create(ctx context.Context, j *model.Journey) error {
	if err := domain.ValidateJourney(j.DepartureTime, j.ArrivalTime); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO journeys (route_id, train_id, departure_time, arrival_time) VALUES (?, ?, ?, ?)`,
		j.RouteID, j.TrainID, j.DepartureTime.UTC(), j.ArrivalTime.UTC())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	j.ID = uint64(id)
	return nil
}

// GetByID returns a bare journey row or ErrJourneyNotFound.
func (r *JourneyRepo) GetByID(ctx context.Context, id uint64) (*model.Journey, error) {
	var j model.Journey
	err := r.db.QueryRowContext(ctx,
		`SELECT id, route_id, train_id, departure_time, arrival_time FROM journeys WHERE id = ?`, id).
		Scan(&j.ID, &j.RouteID, &j.TrainID, &j.DepartureTime, &j.ArrivalTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJourneyNotFound
		}
		return nil, err
	}
	return &j, nil
}

// GetDetail assembles the full detail view of a journey: expanded
// route and train, crew full names, remaining capacity and the
// booked seat map.  Availability is computed here, at read time,
// from the live ticket count.
func (r *JourneyRepo) GetDetail(ctx context.Context, id uint64) (*JourneyDetail, error) {
	var d JourneyDetail
	var dep, arr sql.NullTime
	var booked int64
	var img sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT j.id, j.departure_time, j.arrival_time,
		        r.id, r.distance,
		        s.id, s.name, s.latitude, s.longitude,
		        d.id, d.name, d.latitude, d.longitude,
		        t.id, t.name, t.cargo_num, t.places_in_cargo, t.image_path,
		        tt.id, tt.name,
		        (SELECT COUNT(*) FROM tickets tk WHERE tk.journey_id = j.id)
		 FROM journeys j
		 JOIN routes r ON r.id = j.route_id
		 JOIN stations s ON s.id = r.source_station_id
		 JOIN stations d ON d.id = r.destination_station_id
		 JOIN trains t ON t.id = j.train_id
		 JOIN train_types tt ON tt.id = t.train_type_id
		 WHERE j.id = ?`, id).
		Scan(&d.ID, &dep, &arr,
			&d.Route.ID, &d.Route.Distance,
			&d.Route.Source.ID, &d.Route.Source.Name, &d.Route.Source.Latitude, &d.Route.Source.Longitude,
			&d.Route.Destination.ID, &d.Route.Destination.Name, &d.Route.Destination.Latitude, &d.Route.Destination.Longitude,
			&d.Train.ID, &d.Train.Name, &d.Train.CargoNum, &d.Train.PlacesInCargo, &img,
			&d.Train.TrainType.ID, &d.Train.TrainType.Name,
			&booked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJourneyNotFound
		}
		return nil, err
	}
	if dep.Valid {
		d.DepartureTime = formatTime(dep.Time)
	}
	if arr.Valid {
		d.ArrivalTime = formatTime(arr.Time)
	}
	if img.Valid {
		p := img.String
		d.Train.ImagePath = &p
	}
	d.Train.SeatsInTrain = d.Train.CargoNum * d.Train.PlacesInCargo
	d.TicketsAvailable = d.Train.SeatsInTrain - booked

	crew, err := r.CrewNames(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Crew = crew

	places, err := r.TakenPlaces(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.TakenPlaces = places
	return &d, nil
}

// CrewNames returns the full names of the crew assigned to a
// journey, ordered for deterministic output.
func (r *JourneyRepo) CrewNames(ctx context.Context, journeyID uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.first_name, c.last_name
		 FROM journey_crew jc
		 JOIN crew c ON c.id = jc.crew_id
		 WHERE jc.journey_id = ?
		 ORDER BY c.id`, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := make([]string, 0)
	for rows.Next() {
		var c model.Crew
		if err := rows.Scan(&c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		names = append(names, c.FullName())
	}
	return names, rows.Err()
}

// TakenPlaces returns the (cargo, seat) pairs already booked on a
// journey, ordered by cargo then seat.
func (r *JourneyRepo) TakenPlaces(ctx context.Context, journeyID uint64) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT cargo, seat FROM tickets WHERE journey_id = ? ORDER BY cargo, seat`, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	places := make([]domain.Place, 0)
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.Cargo, &p.Seat); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

// TrainForJourneyTx resolves the train assigned to a journey within
// an open transaction.  The order allocator uses this to validate
// ticket bounds against the same snapshot it inserts into.
func (r *JourneyRepo) TrainForJourneyTx(ctx context.Context, tx *sql.Tx, journeyID uint64) (*model.Train, error) {
	var t model.Train
	err := tx.QueryRowContext(ctx,
		`SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id
		 FROM journeys j
		 JOIN trains t ON t.id = j.train_id
		 WHERE j.id = ?`, journeyID).
		Scan(&t.ID, &t.Name, &t.CargoNum, &t.PlacesInCargo, &t.TrainTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJourneyNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update validates and overwrites an existing journey's schedule and
// references.
func (r *JourneyRepo) Update(ctx context.Context, j *model.Journey) error {
	if err := domain.ValidateJourney(j.DepartureTime, j.ArrivalTime); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE journeys SET route_id = ?, train_id = ?, departure_time = ?, arrival_time = ? WHERE id = ?`,
		j.RouteID, j.TrainID, j.DepartureTime.UTC(), j.ArrivalTime.UTC(), j.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, j.ID); err != nil {
			return err
		}
	}
	return nil
}

// AddCrew puts a crew member into the journey's crew set.  Adding a
// member who is already assigned is a no-op (set semantics).
func (r *JourneyRepo) AddCrew(ctx context.Context, journeyID, crewID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO journey_crew (journey_id, crew_id) VALUES (?, ?)`,
		journeyID, crewID)
	return err
}

// RemoveCrew takes a crew member out of the journey's crew set.
// Removing a member who is not assigned is a no-op.
func (r *JourneyRepo) RemoveCrew(ctx context.Context, journeyID, crewID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM journey_crew WHERE journey_id = ? AND crew_id = ?`,
		journeyID, crewID)
	return err
}

// Delete removes a journey; its tickets and crew memberships
// disappear through the foreign key cascades.
func (r *JourneyRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journeys WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJourneyNotFound
	}
	return nil
}
