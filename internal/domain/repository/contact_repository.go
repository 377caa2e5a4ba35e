package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *model.EmergencyContact) error
	FindByID(ctx context.Context, id string) (*model.EmergencyContact, error)
	List(ctx context.Context, enabledOnly bool) ([]model.EmergencyContact, error)
	Update(ctx context.Context, contact *model.EmergencyContact) error
	Delete(ctx context.Context, id string) error
}

type pgContactRepository struct {
	db *sql.DB
}

func NewPgContactRepository(db *sql.DB) ContactRepository {
	return &pgContactRepository{db: db}
}

func (r *pgContactRepository) Create(ctx context.Context, contact *model.EmergencyContact) error {
	query := `INSERT INTO emergency_contacts (id, name, type, phone, is_enabled)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		contact.ID, contact.Name, contact.Type, contact.Phone, contact.IsEnabled)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Create: %w", err)
	}
	return nil
}

func (r *pgContactRepository) FindByID(ctx context.Context, id string) (*model.EmergencyContact, error) {
	query := `SELECT id, name, type, phone, is_enabled, created_at FROM emergency_contacts WHERE id = $1`
	c := &model.EmergencyContact{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Type, &c.Phone, &c.IsEnabled, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgContactRepository.FindByID: %w", err)
	}
	return c, nil
}

func (r *pgContactRepository) List(ctx context.Context, enabledOnly bool) ([]model.EmergencyContact, error) {
	query := `SELECT id, name, type, phone, is_enabled, created_at FROM emergency_contacts`
	if enabledOnly {
		query += ` WHERE is_enabled = TRUE`
	}
	query += ` ORDER BY type, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgContactRepository.List: %w", err)
	}
	defer rows.Close()

	var contacts []model.EmergencyContact
	for rows.Next() {
		var c model.EmergencyContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Phone, &c.IsEnabled, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgContactRepository.List scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgContactRepository.List rows: %w", err)
	}
	return contacts, nil
}

func (r *pgContactRepository) Update(ctx context.Context, contact *model.EmergencyContact) error {
	query := `UPDATE emergency_contacts SET name = $1, type = $2, phone = $3, is_enabled = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query,
		contact.Name, contact.Type, contact.Phone, contact.IsEnabled, contact.ID)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Update: %w", err)
	}
	return requireAffected(res, "pgContactRepository.Update")
}

func (r *pgContactRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Delete: %w", err)
	}
	return requireAffected(res, "pgContactRepository.Delete")
}
