package memory

import (
	"context"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type RoomRepository struct {
	s *Store
}

func NewRoomRepo(s *Store) *RoomRepository {
	return &RoomRepository{s: s}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.rooms[room.ID] = room.Clone()
	return r.s.commitLocked(func() { delete(r.s.rooms, room.ID) })
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room.Clone(), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rooms := sortedRooms(r.s.rooms)
	for i, room := range rooms {
		rooms[i] = room.Clone()
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.rooms[room.ID]
	if !ok {
		return domain.ErrRoomNotFound
	}

	r.s.rooms[room.ID] = room.Clone()
	return r.s.commitLocked(func() { r.s.rooms[room.ID] = prev })
}

func (r *RoomRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.rooms[id]
	if !ok {
		return domain.ErrRoomNotFound
	}

	next := prev.Clone()
	next.Available = available
	next.UpdatedAt = time.Now().UTC()
	r.s.rooms[id] = next
	return r.s.commitLocked(func() { r.s.rooms[id] = prev })
}

// Delete отказывает, если на номер ссылается хотя бы одна бронь.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.rooms[id]
	if !ok {
		return domain.ErrRoomNotFound
	}
	for _, b := range r.s.bookings {
		if b.RoomID == id {
			return domain.ErrRoomHasBookings
		}
	}

	delete(r.s.rooms, id)
	return r.s.commitLocked(func() { r.s.rooms[id] = prev })
}
