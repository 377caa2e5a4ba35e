package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	FindByID(ctx context.Context, id string) (*model.Complaint, error)
	ListByResident(ctx context.Context, residentID string) ([]model.Complaint, error)
	ListAll(ctx context.Context, status string, page, pageSize int) ([]model.Complaint, int, error)
	Update(ctx context.Context, complaint *model.Complaint) error
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type pgComplaintRepository struct {
	db *sql.DB
}

func NewPgComplaintRepository(db *sql.DB) ComplaintRepository {
	return &pgComplaintRepository{db: db}
}

// Complaint rows are joined with the resident's account row so list views
// carry the name and flat number without a second round-trip.
const complaintSelect = `SELECT c.id, c.title, c.description, c.category, c.status, c.priority,
       c.resident_id, u.name, u.flat_number, c.assigned_to, c.admin_remark, c.created_at, c.updated_at
  FROM complaints c JOIN users u ON u.id = c.resident_id`

func (r *pgComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	query := `INSERT INTO complaints (id, title, description, category, status, priority, resident_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		complaint.ID, complaint.Title, complaint.Description, complaint.Category,
		complaint.Status, complaint.Priority, complaint.ResidentID)
	if err != nil {
		return fmt.Errorf("pgComplaintRepository.Create: %w", err)
	}
	return nil
}

func (r *pgComplaintRepository) FindByID(ctx context.Context, id string) (*model.Complaint, error) {
	row := r.db.QueryRowContext(ctx, complaintSelect+` WHERE c.id = $1`, id)
	c := &model.Complaint{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Status, &c.Priority,
		&c.ResidentID, &c.ResidentName, &c.FlatNumber, &c.AssignedTo, &c.AdminRemark,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgComplaintRepository.FindByID: %w", err)
	}
	return c, nil
}

func (r *pgComplaintRepository) ListByResident(ctx context.Context, residentID string) ([]model.Complaint, error) {
	query := complaintSelect + ` WHERE c.resident_id = $1 ORDER BY c.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("pgComplaintRepository.ListByResident: %w", err)
	}
	defer rows.Close()
	return r.collect(rows, "ListByResident")
}

func (r *pgComplaintRepository) ListAll(ctx context.Context, status string, page, pageSize int) ([]model.Complaint, int, error) {
	countQuery := `SELECT COUNT(*) FROM complaints`
	listQuery := complaintSelect + ` ORDER BY c.created_at DESC LIMIT $1 OFFSET $2`

	var total int
	var rows *sql.Rows
	var err error
	if status != "" {
		err = r.db.QueryRowContext(ctx, countQuery+` WHERE status = $1`, status).Scan(&total)
		if err != nil {
			return nil, 0, fmt.Errorf("pgComplaintRepository.ListAll count: %w", err)
		}
		rows, err = r.db.QueryContext(ctx,
			complaintSelect+` WHERE c.status = $1 ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`,
			status, pageSize, (page-1)*pageSize)
	} else {
		err = r.db.QueryRowContext(ctx, countQuery).Scan(&total)
		if err != nil {
			return nil, 0, fmt.Errorf("pgComplaintRepository.ListAll count: %w", err)
		}
		rows, err = r.db.QueryContext(ctx, listQuery, pageSize, (page-1)*pageSize)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("pgComplaintRepository.ListAll: %w", err)
	}
	defer rows.Close()

	complaints, err := r.collect(rows, "ListAll")
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

func (r *pgComplaintRepository) collect(rows *sql.Rows, op string) ([]model.Complaint, error) {
	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.Category, &c.Status, &c.Priority,
			&c.ResidentID, &c.ResidentName, &c.FlatNumber, &c.AssignedTo, &c.AdminRemark,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgComplaintRepository.%s scan: %w", op, err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgComplaintRepository.%s rows: %w", op, err)
	}
	return complaints, nil
}

func (r *pgComplaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	query := `UPDATE complaints SET status = $1, priority = $2, assigned_to = $3,
	          admin_remark = $4, updated_at = now() WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query,
		complaint.Status, complaint.Priority, complaint.AssignedTo, complaint.AdminRemark, complaint.ID)
	if err != nil {
		return fmt.Errorf("pgComplaintRepository.Update: %w", err)
	}
	return requireAffected(res, "pgComplaintRepository.Update")
}

func (r *pgComplaintRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgComplaintRepository.CountAll: %w", err)
	}
	return count, nil
}

func (r *pgComplaintRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM complaints WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgComplaintRepository.CountByStatus: %w", err)
	}
	return count, nil
}
