package memory

import (
	"context"
	"sort"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type BookingRepository struct {
	s *Store
}

func NewBookingRepo(s *Store) *BookingRepository {
	return &BookingRepository{s: s}
}

func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[b.RoomID]; !ok {
		return domain.ErrRoomNotFound
	}
	if _, ok := r.s.codes[b.ConfirmationCode]; ok {
		return domain.ErrConfirmationCodeTaken
	}

	rng := b.Range()
	for _, e := range r.s.bookings {
		if e.RoomID == b.RoomID && e.Blocks() && e.Range().Overlaps(rng) {
			return domain.ErrRoomUnavailable
		}
	}

	r.s.bookings[b.ID] = b.Clone()
	r.s.codes[b.ConfirmationCode] = b.ID
	return r.s.commitLocked(func() {
		delete(r.s.bookings, b.ID)
		delete(r.s.codes, b.ConfirmationCode)
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (r *BookingRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.codes[code]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return r.s.bookings[id].Clone(), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.collect(ctx, func(*domain.Booking) bool { return true })
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	return r.collect(ctx, func(b *domain.Booking) bool { return b.RoomID == roomID })
}

func (r *BookingRepository) ListOverlapping(ctx context.Context, rng domain.DateRange) ([]*domain.Booking, error) {
	return r.collect(ctx, func(b *domain.Booking) bool {
		return b.Blocks() && b.Range().Overlaps(rng)
	})
}

// Update перезаписывает изменяемые поля брони. Номер, даты, цена и код
// подтверждения остаются прежними.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.bookings[b.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	// отмена окончательна, даже если вызывающий держит устаревшую копию
	if prev.Status == domain.BookingStatusCancelled && b.Status != domain.BookingStatusCancelled {
		return domain.ErrBookingCancelled
	}
	if b.Blocks() {
		rng := prev.Range()
		for _, e := range r.s.bookings {
			if e.ID != prev.ID && e.RoomID == prev.RoomID && e.Blocks() && e.Range().Overlaps(rng) {
				return domain.ErrRoomUnavailable
			}
		}
	}

	next := prev.Clone()
	upd := b.Clone()
	next.Guests = upd.Guests
	next.AdultCount = upd.AdultCount
	next.ChildrenCount = upd.ChildrenCount
	next.SpecialRequests = upd.SpecialRequests
	next.Status = upd.Status
	next.PaymentStatus = upd.PaymentStatus
	next.UpdatedAt = upd.UpdatedAt

	r.s.bookings[b.ID] = next
	return r.s.commitLocked(func() { r.s.bookings[b.ID] = prev })
}

func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev := make(map[string]*domain.Booking)
	var res []*domain.Booking
	for id, b := range r.s.bookings {
		if b.Status != domain.BookingStatusConfirmed || b.CheckOut.After(now) {
			continue
		}
		prev[id] = b
		next := b.Clone()
		next.Status = domain.BookingStatusCompleted
		next.UpdatedAt = now
		r.s.bookings[id] = next
		res = append(res, next.Clone())
	}

	if len(res) == 0 {
		return nil, nil
	}

	err := r.s.commitLocked(func() {
		for id, b := range prev {
			r.s.bookings[id] = b
		}
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(res)
	return res, nil
}

func (r *BookingRepository) collect(ctx context.Context, keep func(*domain.Booking) bool) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Booking, 0)
	for _, b := range r.s.bookings {
		if keep(b) {
			res = append(res, b.Clone())
		}
	}

	sortNewestFirst(res)
	return res, nil
}

func sortNewestFirst(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		bi, bj := bookings[i], bookings[j]
		if !bi.CreatedAt.Equal(bj.CreatedAt) {
			return bi.CreatedAt.After(bj.CreatedAt)
		}
		return bi.ID > bj.ID
	})
}
