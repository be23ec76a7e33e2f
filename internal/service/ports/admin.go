package ports

import (
	"context"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type AdminRepo interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	List(ctx context.Context) ([]*domain.AdminUser, error)
	TouchLogin(ctx context.Context, id string, at time.Time) error
}
