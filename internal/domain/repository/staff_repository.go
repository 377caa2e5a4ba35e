package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindByID(ctx context.Context, id string) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
	Update(ctx context.Context, staff *model.Staff) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type pgStaffRepository struct {
	db *sql.DB
}

func NewPgStaffRepository(db *sql.DB) StaffRepository {
	return &pgStaffRepository{db: db}
}

const staffColumns = `id, name, email, phone, role, department, status, created_at, updated_at`

func (r *pgStaffRepository) Create(ctx context.Context, staff *model.Staff) error {
	query := `INSERT INTO staff (id, name, email, phone, role, department, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		staff.ID, staff.Name, staff.Email, staff.Phone, staff.Role, staff.Department, staff.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("staff member with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgStaffRepository.Create: %w", err)
	}
	return nil
}

func (r *pgStaffRepository) FindByID(ctx context.Context, id string) (*model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	s := &model.Staff{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Role, &s.Department, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgStaffRepository.FindByID: %w", err)
	}
	return s, nil
}

func (r *pgStaffRepository) List(ctx context.Context) ([]model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY department, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgStaffRepository.List: %w", err)
	}
	defer rows.Close()

	var members []model.Staff
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Phone, &s.Role, &s.Department, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgStaffRepository.List scan: %w", err)
		}
		members = append(members, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgStaffRepository.List rows: %w", err)
	}
	return members, nil
}

func (r *pgStaffRepository) Update(ctx context.Context, staff *model.Staff) error {
	query := `UPDATE staff SET name = $1, email = $2, phone = $3, role = $4,
	          department = $5, status = $6, updated_at = now() WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		staff.Name, staff.Email, staff.Phone, staff.Role, staff.Department, staff.Status, staff.ID)
	if err != nil {
		return fmt.Errorf("pgStaffRepository.Update: %w", err)
	}
	return requireAffected(res, "pgStaffRepository.Update")
}

func (r *pgStaffRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgStaffRepository.Delete: %w", err)
	}
	return requireAffected(res, "pgStaffRepository.Delete")
}

func (r *pgStaffRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgStaffRepository.Count: %w", err)
	}
	return count, nil
}
