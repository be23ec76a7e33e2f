package memory

import (
	"context"
	"sort"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type AdminRepository struct {
	s *Store
}

func NewAdminRepo(s *Store) *AdminRepository {
	return &AdminRepository{s: s}
}

func (r *AdminRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}

	c := *u
	r.s.admins[u.ID] = &c
	return r.s.commitLocked(func() { delete(r.s.admins, u.ID) })
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.admins {
		if a.Email == email {
			c := *a
			return &c, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *AdminRepository) List(ctx context.Context) ([]*domain.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.AdminUser, 0, len(r.s.admins))
	for _, a := range r.s.admins {
		c := *a
		res = append(res, &c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func (r *AdminRepository) TouchLogin(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.admins[id]
	if !ok {
		return domain.ErrAdminNotFound
	}

	next := *prev
	next.LastLoginAt = &at
	r.s.admins[id] = &next
	return r.s.commitLocked(func() { r.s.admins[id] = prev })
}
