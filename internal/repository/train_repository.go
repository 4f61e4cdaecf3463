package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrTrainNotFound is returned when a train with the requested ID
// does not exist.
var ErrTrainNotFound = errors.New("train not found")

// TrainRepo provides CRUD and filtered listing over the trains
// table.  cargo_num carries a uniqueness constraint; violating it
// surfaces as ErrDuplicateName.
type TrainRepo struct {
	db *sql.DB
}

// NewTrainRepo returns a new TrainRepo bound to the given database.
func NewTrainRepo(db *sql.DB) *TrainRepo { return &TrainRepo{db: db} }

// TrainRow is a train annotated with its type name and derived seat
// count, produced for list views.
type TrainRow struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	CargoNum      int64   `json:"cargo_num"`
	PlacesInCargo int64   `json:"places_in_cargo"`
	TrainType     string  `json:"train_type"`
	SeatsInTrain  int64   `json:"seats_in_train"`
	ImagePath     *string `json:"image,omitempty"`
}

// TrainDetail is a train expanded with the full train type record,
// produced for detail views.
type TrainDetail struct {
	ID            uint64          `json:"id"`
	Name          string          `json:"name"`
	CargoNum      int64           `json:"cargo_num"`
	PlacesInCargo int64           `json:"places_in_cargo"`
	TrainType     model.TrainType `json:"train_type"`
	SeatsInTrain  int64           `json:"seats_in_train"`
	ImagePath     *string         `json:"image,omitempty"`
}

// Create inserts a train and populates its generated ID.
func (r *TrainRepo) Create(ctx context.Context, t *model.Train) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trains (name, cargo_num, places_in_cargo, train_type_id) VALUES (?, ?, ?, ?)`,
		t.Name, t.CargoNum, t.PlacesInCargo, t.TrainTypeID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateName
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID returns a bare train row or ErrTrainNotFound.
func (r *TrainRepo) GetByID(ctx context.Context, id uint64) (*model.Train, error) {
	var t model.Train
	var img sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, cargo_num, places_in_cargo, train_type_id, image_path
		 FROM trains WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.CargoNum, &t.PlacesInCargo, &t.TrainTypeID, &img)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	if img.Valid {
		p := img.String
		t.ImagePath = &p
	}
	return &t, nil
}

// GetDetail returns a train joined with its train type, or
// ErrTrainNotFound.
func (r *TrainRepo) GetDetail(ctx context.Context, id uint64) (*TrainDetail, error) {
	var d TrainDetail
	var img sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, tt.id, tt.name, t.image_path
		 FROM trains t
		 JOIN train_types tt ON tt.id = t.train_type_id
		 WHERE t.id = ?`, id).
		Scan(&d.ID, &d.Name, &d.CargoNum, &d.PlacesInCargo, &d.TrainType.ID, &d.TrainType.Name, &img)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	if img.Valid {
		p := img.String
		d.ImagePath = &p
	}
	d.SeatsInTrain = d.CargoNum * d.PlacesInCargo
	return &d, nil
}

// List returns trains joined with their type names.  When typeName
// is non-empty, results narrow to trains whose type name contains it
// (case-insensitive).  Rows are de-duplicated before being returned.
func (r *TrainRepo) List(ctx context.Context, typeName string) ([]TrainRow, error) {
	q := `SELECT DISTINCT t.id, t.name, t.cargo_num, t.places_in_cargo, tt.name, t.image_path
	      FROM trains t
	      JOIN train_types tt ON tt.id = t.train_type_id`
	args := []any{}
	if typeName != "" {
		q += ` WHERE LOWER(tt.name) LIKE ?`
		args = append(args, "%"+strings.ToLower(typeName)+"%")
	}
	q += ` ORDER BY t.id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]TrainRow, 0)
	for rows.Next() {
		var row TrainRow
		var img sql.NullString
		if err := rows.Scan(&row.ID, &row.Name, &row.CargoNum, &row.PlacesInCargo, &row.TrainType, &img); err != nil {
			return nil, err
		}
		if img.Valid {
			p := img.String
			row.ImagePath = &p
		}
		row.SeatsInTrain = row.CargoNum * row.PlacesInCargo
		out = append(out, row)
	}
	return out, rows.Err()
}

// Update overwrites an existing train's fields.
func (r *TrainRepo) Update(ctx context.Context, t *model.Train) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE trains SET name = ?, cargo_num = ?, places_in_cargo = ?, train_type_id = ? WHERE id = ?`,
		t.Name, t.CargoNum, t.PlacesInCargo, t.TrainTypeID, t.ID)
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateName
	}
	return err
}

// SetImagePath records where a train's uploaded image was stored.
func (r *TrainRepo) SetImagePath(ctx context.Context, id uint64, path string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trains SET image_path = ? WHERE id = ?`, path, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTrainNotFound
	}
	return nil
}

// Delete removes a train; its journeys disappear through the foreign
// key cascade.
func (r *TrainRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trains WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTrainNotFound
	}
	return nil
}
