package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AdminRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	query := `INSERT INTO admin_users (id, email, name, role, password_hash, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.Constraint == adminEmailConstraint {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT id, email, name, role, password_hash, created_at, last_login_at
			  FROM admin_users
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	u, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return u, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]*domain.AdminUser, error) {
	query := `SELECT id, email, name, role, password_hash, created_at, last_login_at
			  FROM admin_users
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var res []*domain.AdminUser
	for rows.Next() {
		u, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func (r *AdminRepository) TouchLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE admin_users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch admin login: %w", err)
	}

	return expectAffected(res, domain.ErrAdminNotFound)
}

func scanAdmin(sc scanner) (*domain.AdminUser, error) {
	var (
		u         domain.AdminUser
		lastLogin sql.NullTime
	)
	if err := sc.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt, &lastLogin); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		u.LastLoginAt = &lastLogin.Time
	}
	return &u, nil
}
