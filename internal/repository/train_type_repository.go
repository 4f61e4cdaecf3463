package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/railway-ticket-service/internal/model"
)

// ErrTrainTypeNotFound is returned when a train type with the
// requested ID does not exist.
var ErrTrainTypeNotFound = errors.New("train type not found")

// TrainTypeRepo provides CRUD operations over the train_types table.
// Type names are unique; duplicate inserts surface as
// ErrDuplicateName.
type TrainTypeRepo struct {
	db *sql.DB
}

// NewTrainTypeRepo returns a new TrainTypeRepo bound to the given database.
func NewTrainTypeRepo(db *sql.DB) *TrainTypeRepo { return &TrainTypeRepo{db: db} }

// Create inserts a train type and populates its generated ID.
func (r *TrainTypeRepo) Create(ctx context.Context, t *model.TrainType) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO train_types (name) VALUES (?)`, t.Name)
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

// GetByID returns a single train type or ErrTrainTypeNotFound.
func (r *TrainTypeRepo) GetByID(ctx context.Context, id uint64) (*model.TrainType, error) {
	var t model.TrainType
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM train_types WHERE id = ?`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all train types ordered by ID.
func (r *TrainTypeRepo) List(ctx context.Context) ([]model.TrainType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM train_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TrainType, 0)
	for rows.Next() {
		var t model.TrainType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update renames a train type.
func (r *TrainTypeRepo) Update(ctx context.Context, t *model.TrainType) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE train_types SET name = ? WHERE id = ?`, t.Name, t.ID)
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateName
	}
	return err
}

// Delete removes a train type; its trains disappear through the
// foreign key cascade.
func (r *TrainTypeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM train_types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTrainTypeNotFound
	}
	return nil
}
