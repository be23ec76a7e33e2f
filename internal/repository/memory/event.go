package memory

import (
	"context"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type EventRepository struct {
	s *Store
}

func NewEventRepo(s *Store) *EventRepository {
	return &EventRepository{s: s}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.events[e.ID] = e.Clone()
	return r.s.commitLocked(func() { delete(r.s.events, e.ID) })
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e.Clone(), nil
}

// List возвращает мероприятия по дате проведения, ближайшие первыми.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	events := sortedEvents(r.s.events)
	for i, e := range events {
		events[i] = e.Clone()
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}

	r.s.events[e.ID] = e.Clone()
	return r.s.commitLocked(func() { r.s.events[e.ID] = prev })
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}

	delete(r.s.events, id)
	return r.s.commitLocked(func() { r.s.events[id] = prev })
}
