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

type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	FindByID(ctx context.Context, id string) (*model.Notice, error)
	FindBySlug(ctx context.Context, slug string) (*model.Notice, error)
	ListActive(ctx context.Context) ([]model.Notice, error)
	ListAll(ctx context.Context, page, pageSize int) ([]model.Notice, int, error)
	Update(ctx context.Context, notice *model.Notice) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

type pgNoticeRepository struct {
	db *sql.DB
}

func NewPgNoticeRepository(db *sql.DB) NoticeRepository {
	return &pgNoticeRepository{db: db}
}

const noticeColumns = `id, title, slug, content, category, priority, is_active, published_at, expires_at, created_at, updated_at`

func (r *pgNoticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	query := `INSERT INTO notices (id, title, slug, content, category, priority, is_active, published_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		notice.ID, notice.Title, notice.Slug, notice.Content, notice.Category,
		notice.Priority, notice.IsActive, notice.PublishedAt, notice.ExpiresAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("notice with given slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgNoticeRepository.Create: %w", err)
	}
	return nil
}

func (r *pgNoticeRepository) FindByID(ctx context.Context, id string) (*model.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *pgNoticeRepository) FindBySlug(ctx context.Context, slug string) (*model.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug), "FindBySlug")
}

func (r *pgNoticeRepository) scanOne(row *sql.Row, op string) (*model.Notice, error) {
	n := &model.Notice{}
	err := row.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Content, &n.Category, &n.Priority,
		&n.IsActive, &n.PublishedAt, &n.ExpiresAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgNoticeRepository.%s: %w", op, err)
	}
	return n, nil
}

// ListActive returns the public notice board: active, unexpired notices,
// most urgent and most recent first.
func (r *pgNoticeRepository) ListActive(ctx context.Context) ([]model.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices
	          WHERE is_active = TRUE AND (expires_at IS NULL OR expires_at > now())
	          ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgNoticeRepository.ListActive: %w", err)
	}
	defer rows.Close()
	return r.collect(rows, "ListActive")
}

func (r *pgNoticeRepository) ListAll(ctx context.Context, page, pageSize int) ([]model.Notice, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notices`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgNoticeRepository.ListAll count: %w", err)
	}

	query := `SELECT ` + noticeColumns + ` FROM notices
	          ORDER BY published_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("pgNoticeRepository.ListAll: %w", err)
	}
	defer rows.Close()

	notices, err := r.collect(rows, "ListAll")
	if err != nil {
		return nil, 0, err
	}
	return notices, total, nil
}

func (r *pgNoticeRepository) collect(rows *sql.Rows, op string) ([]model.Notice, error) {
	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Slug, &n.Content, &n.Category, &n.Priority,
			&n.IsActive, &n.PublishedAt, &n.ExpiresAt, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgNoticeRepository.%s scan: %w", op, err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgNoticeRepository.%s rows: %w", op, err)
	}
	return notices, nil
}

func (r *pgNoticeRepository) Update(ctx context.Context, notice *model.Notice) error {
	query := `UPDATE notices SET title = $1, content = $2, category = $3, priority = $4,
	          is_active = $5, expires_at = $6, updated_at = now() WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		notice.Title, notice.Content, notice.Category, notice.Priority,
		notice.IsActive, notice.ExpiresAt, notice.ID)
	if err != nil {
		return fmt.Errorf("pgNoticeRepository.Update: %w", err)
	}
	return requireAffected(res, "pgNoticeRepository.Update")
}

func (r *pgNoticeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgNoticeRepository.Delete: %w", err)
	}
	return requireAffected(res, "pgNoticeRepository.Delete")
}

func (r *pgNoticeRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notices WHERE is_active = TRUE AND (expires_at IS NULL OR expires_at > now())`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgNoticeRepository.CountActive: %w", err)
	}
	return count, nil
}

func requireAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s affected: %w", op, err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
