package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
)

type AmenityRepository interface {
	Create(ctx context.Context, amenity *model.Amenity) error
	FindByID(ctx context.Context, id string) (*model.Amenity, error)
	List(ctx context.Context, enabledOnly bool) ([]model.Amenity, error)
	Update(ctx context.Context, amenity *model.Amenity) error
	Delete(ctx context.Context, id string) error
}

type pgAmenityRepository struct {
	db *sql.DB
}

func NewPgAmenityRepository(db *sql.DB) AmenityRepository {
	return &pgAmenityRepository{db: db}
}

const amenityColumns = `id, name, description, is_enabled, time_slots, max_bookings_per_day, rules, created_at`

// Time slots are stored as a JSONB array; a slot list is read and written
// whole, never queried by element.
func (r *pgAmenityRepository) Create(ctx context.Context, amenity *model.Amenity) error {
	slots, err := json.Marshal(amenity.TimeSlots)
	if err != nil {
		return fmt.Errorf("pgAmenityRepository.Create marshal: %w", err)
	}
	query := `INSERT INTO amenities (id, name, description, is_enabled, time_slots, max_bookings_per_day, rules)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecContext(ctx, query,
		amenity.ID, amenity.Name, amenity.Description, amenity.IsEnabled,
		slots, amenity.MaxBookingsPerDay, amenity.Rules)
	if err != nil {
		return fmt.Errorf("pgAmenityRepository.Create: %w", err)
	}
	return nil
}

func (r *pgAmenityRepository) FindByID(ctx context.Context, id string) (*model.Amenity, error) {
	query := `SELECT ` + amenityColumns + ` FROM amenities WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	a := &model.Amenity{}
	var slots []byte
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.IsEnabled, &slots,
		&a.MaxBookingsPerDay, &a.Rules, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgAmenityRepository.FindByID: %w", err)
	}
	if err := json.Unmarshal(slots, &a.TimeSlots); err != nil {
		return nil, fmt.Errorf("pgAmenityRepository.FindByID unmarshal: %w", err)
	}
	return a, nil
}

func (r *pgAmenityRepository) List(ctx context.Context, enabledOnly bool) ([]model.Amenity, error) {
	query := `SELECT ` + amenityColumns + ` FROM amenities`
	if enabledOnly {
		query += ` WHERE is_enabled = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgAmenityRepository.List: %w", err)
	}
	defer rows.Close()

	var amenities []model.Amenity
	for rows.Next() {
		var a model.Amenity
		var slots []byte
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.IsEnabled, &slots,
			&a.MaxBookingsPerDay, &a.Rules, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgAmenityRepository.List scan: %w", err)
		}
		if err := json.Unmarshal(slots, &a.TimeSlots); err != nil {
			return nil, fmt.Errorf("pgAmenityRepository.List unmarshal: %w", err)
		}
		amenities = append(amenities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgAmenityRepository.List rows: %w", err)
	}
	return amenities, nil
}

func (r *pgAmenityRepository) Update(ctx context.Context, amenity *model.Amenity) error {
	slots, err := json.Marshal(amenity.TimeSlots)
	if err != nil {
		return fmt.Errorf("pgAmenityRepository.Update marshal: %w", err)
	}
	query := `UPDATE amenities SET name = $1, description = $2, is_enabled = $3,
	          time_slots = $4, max_bookings_per_day = $5, rules = $6 WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		amenity.Name, amenity.Description, amenity.IsEnabled, slots,
		amenity.MaxBookingsPerDay, amenity.Rules, amenity.ID)
	if err != nil {
		return fmt.Errorf("pgAmenityRepository.Update: %w", err)
	}
	return requireAffected(res, "pgAmenityRepository.Update")
}

func (r *pgAmenityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgAmenityRepository.Delete: %w", err)
	}
	return requireAffected(res, "pgAmenityRepository.Delete")
}
