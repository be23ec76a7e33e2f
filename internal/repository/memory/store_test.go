package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRoom(id string) *domain.Room {
	return &domain.Room{
		ID:            id,
		Name:          "Deluxe Room",
		PricePerNight: 280,
		MaxGuests:     2,
		Available:     true,
		RoomType:      domain.RoomTypeDeluxe,
		Amenities:     []string{"WiFi"},
		CreatedAt:     time.Now().UTC(),
	}
}

func newBooking(roomID, code string, ci, co time.Time) *domain.Booking {
	return &domain.Booking{
		ID:               uuid.New().String(),
		RoomID:           roomID,
		ConfirmationCode: code,
		CheckIn:          ci,
		CheckOut:         co,
		Guests:           []domain.Guest{{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "1", IsMainGuest: true}},
		AdultCount:       1,
		TotalPrice:       280,
		Status:           domain.BookingStatusConfirmed,
		PaymentStatus:    domain.PaymentStatusPending,
		CreatedAt:        time.Now().UTC(),
	}
}

func setupStore(t *testing.T) (*Store, *RoomRepository, *BookingRepository) {
	t.Helper()
	s := New()
	rooms := NewRoomRepo(s)
	require.NoError(t, rooms.Create(context.Background(), newRoom("r1")))
	return s, rooms, NewBookingRepo(s)
}

func TestBookingRepo_Reserve_Overlap(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, newBooking("r1", "AAAA0001", date(2024, 6, 1), date(2024, 6, 5))))

	err := repo.Reserve(ctx, newBooking("r1", "AAAA0002", date(2024, 6, 4), date(2024, 6, 6)))
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)

	// заезд в день выезда предыдущего гостя
	assert.NoError(t, repo.Reserve(ctx, newBooking("r1", "AAAA0003", date(2024, 6, 5), date(2024, 6, 8))))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBookingRepo_Reserve_DuplicateCode(t *testing.T) {
	_, rooms, repo := setupStore(t)
	ctx := context.Background()
	require.NoError(t, rooms.Create(ctx, newRoom("r2")))

	require.NoError(t, repo.Reserve(ctx, newBooking("r1", "SAMECODE", date(2024, 6, 1), date(2024, 6, 2))))

	err := repo.Reserve(ctx, newBooking("r2", "SAMECODE", date(2024, 6, 1), date(2024, 6, 2)))
	assert.ErrorIs(t, err, domain.ErrConfirmationCodeTaken)
}

func TestBookingRepo_Reserve_UnknownRoom(t *testing.T) {
	_, _, repo := setupStore(t)

	err := repo.Reserve(context.Background(), newBooking("missing", "AAAA0001", date(2024, 6, 1), date(2024, 6, 2)))
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingRepo_Reserve_ConcurrentSameSlot(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	const workers = 32
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		successes   int
		unavailable int
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			err := repo.Reserve(ctx, newBooking("r1", fmt.Sprintf("CODE%04d", i), date(2024, 7, 1), date(2024, 7, 3)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrRoomUnavailable):
				unavailable++
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, unavailable)
}

func TestBookingRepo_CancelledFreesDates(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	b := newBooking("r1", "AAAA0001", date(2024, 6, 1), date(2024, 6, 5))
	require.NoError(t, repo.Reserve(ctx, b))

	b.Status = domain.BookingStatusCancelled
	require.NoError(t, repo.Update(ctx, b))

	overlapping, err := repo.ListOverlapping(ctx, domain.DateRange{CheckIn: date(2024, 6, 2), CheckOut: date(2024, 6, 3)})
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	assert.NoError(t, repo.Reserve(ctx, newBooking("r1", "AAAA0002", date(2024, 6, 2), date(2024, 6, 3))))

	// отмененная бронь остается в истории номера
	byRoom, err := repo.ListByRoom(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, byRoom, 2)
}

func TestBookingRepo_Update_KeepsLockedFields(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	b := newBooking("r1", "AAAA0001", date(2024, 6, 1), date(2024, 6, 5))
	require.NoError(t, repo.Reserve(ctx, b))

	upd := b.Clone()
	upd.TotalPrice = 1
	upd.CheckOut = date(2024, 6, 30)
	upd.PaymentStatus = domain.PaymentStatusPaid
	require.NoError(t, repo.Update(ctx, upd))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(280), got.TotalPrice)
	assert.True(t, got.CheckOut.Equal(date(2024, 6, 5)))
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)
}

func TestBookingRepo_Update_StaleCopyAfterCancel(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	first := newBooking("r1", "AAAA0001", date(2030, 6, 1), date(2030, 6, 5))
	first.Status = domain.BookingStatusPending
	require.NoError(t, repo.Reserve(ctx, first))

	stale, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)

	cancelled := stale.Clone()
	cancelled.Status = domain.BookingStatusCancelled
	require.NoError(t, repo.Update(ctx, cancelled))
	require.NoError(t, repo.Reserve(ctx, newBooking("r1", "AAAA0002", date(2030, 6, 1), date(2030, 6, 5))))

	tests := []struct {
		name   string
		status domain.BookingStatus
		want   error
	}{
		{"payment only keeps stale pending", domain.BookingStatusPending, domain.ErrBookingCancelled},
		{"confirm", domain.BookingStatusConfirmed, domain.ErrBookingCancelled},
		{"cancel again", domain.BookingStatusCancelled, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upd := stale.Clone()
			upd.Status = tt.status
			upd.PaymentStatus = domain.PaymentStatusPaid

			err := repo.Update(ctx, upd)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)

	byRoom, err := repo.ListByRoom(ctx, "r1")
	require.NoError(t, err)
	blocking := 0
	for _, b := range byRoom {
		if b.Blocks() {
			blocking++
		}
	}
	assert.Equal(t, 1, blocking)
}

func TestBookingRepo_NotFound(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = repo.GetByConfirmationCode(ctx, "NOPE0000")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	err = repo.Update(ctx, &domain.Booking{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepo_CompleteFinished(t *testing.T) {
	_, _, repo := setupStore(t)
	ctx := context.Background()

	past := newBooking("r1", "PAST0001", date(2024, 6, 1), date(2024, 6, 3))
	pending := newBooking("r1", "PEND0001", date(2024, 6, 3), date(2024, 6, 4))
	pending.Status = domain.BookingStatusPending
	future := newBooking("r1", "FUTR0001", date(2024, 6, 10), date(2024, 6, 12))
	for _, b := range []*domain.Booking{past, pending, future} {
		require.NoError(t, repo.Reserve(ctx, b))
	}

	completed, err := repo.CompleteFinished(ctx, date(2024, 6, 5))
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, past.ID, completed[0].ID)
	assert.Equal(t, domain.BookingStatusCompleted, completed[0].Status)

	again, err := repo.CompleteFinished(ctx, date(2024, 6, 5))
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestRoomRepo_Delete(t *testing.T) {
	_, rooms, repo := setupStore(t)
	ctx := context.Background()
	require.NoError(t, rooms.Create(ctx, newRoom("empty")))

	require.NoError(t, repo.Reserve(ctx, newBooking("r1", "AAAA0001", date(2024, 6, 1), date(2024, 6, 2))))

	assert.ErrorIs(t, rooms.Delete(ctx, "r1"), domain.ErrRoomHasBookings)
	assert.NoError(t, rooms.Delete(ctx, "empty"))
	assert.ErrorIs(t, rooms.Delete(ctx, "empty"), domain.ErrRoomNotFound)
}

func TestRoomRepo_ReturnsCopies(t *testing.T) {
	_, rooms, _ := setupStore(t)
	ctx := context.Background()

	got, err := rooms.GetByID(ctx, "r1")
	require.NoError(t, err)
	got.Name = "changed"
	got.Amenities[0] = "changed"

	again, err := rooms.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Room", again.Name)
	assert.Equal(t, "WiFi", again.Amenities[0])
}

func TestRoomRepo_SetAvailability(t *testing.T) {
	_, rooms, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, rooms.SetAvailability(ctx, "r1", false))

	got, err := rooms.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, got.Available)

	assert.ErrorIs(t, rooms.SetAvailability(ctx, "missing", true), domain.ErrRoomNotFound)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.json")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewRoomRepo(s).Create(ctx, newRoom("r1")))
	b := newBooking("r1", "AAAA0001", date(2024, 6, 1), date(2024, 6, 5))
	require.NoError(t, NewBookingRepo(s).Reserve(ctx, b))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "rooms")
	assert.Contains(t, doc, "bookings")
	assert.Contains(t, string(raw), `"checkIn": "2024-06-01T00:00:00Z"`)

	reopened, err := Open(path)
	require.NoError(t, err)

	got, err := NewBookingRepo(reopened).GetByConfirmationCode(ctx, "AAAA0001")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.True(t, got.CheckIn.Equal(b.CheckIn))

	err = NewBookingRepo(reopened).Reserve(ctx, newBooking("r1", "AAAA0002", date(2024, 6, 2), date(2024, 6, 3)))
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestStore_FailedPersistRollsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	s := New()
	ctx := context.Background()
	require.NoError(t, NewRoomRepo(s).Create(ctx, newRoom("r1")))

	// родительский путь - обычный файл, запись снимка невозможна
	s.path = filepath.Join(blocker, "ledger.json")

	repo := NewBookingRepo(s)
	err := repo.Reserve(ctx, newBooking("r1", "AAAA0001", date(2024, 6, 1), date(2024, 6, 2)))
	require.Error(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.GetByConfirmationCode(ctx, "AAAA0001")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStore_Seed(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now().UTC()

	seeded, err := s.Seed(ctx, DefaultRooms(now), SampleBookings(now), SampleEvents(now))
	require.NoError(t, err)
	assert.True(t, seeded)

	rooms, err := NewRoomRepo(s).List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 4)

	b, err := NewBookingRepo(s).GetByConfirmationCode(ctx, "JS456ABC")
	require.NoError(t, err)
	assert.Equal(t, DeluxeRoomID, b.RoomID)
	assert.Equal(t, int64(840000), b.TotalPrice)

	events, err := NewEventRepo(s).List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Jazz Night", events[0].Title)

	seeded, err = s.Seed(ctx, DefaultRooms(now), nil, nil)
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestEventRepo_CRUD(t *testing.T) {
	s := New()
	repo := NewEventRepo(s)
	ctx := context.Background()

	late := &domain.Event{ID: "e2", Title: "Wine Tasting", Date: date(2030, 7, 20)}
	early := &domain.Event{ID: "e1", Title: "Jazz Night", Date: date(2030, 7, 10)}
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "e1", all[0].ID)

	// изменение копии не затрагивает хранилище
	all[0].Title = "changed"
	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", got.Title)

	got.Location = "Rooftop Bar"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Rooftop Bar", got.Location)

	require.NoError(t, repo.Delete(ctx, "e1"))
	_, err = repo.GetByID(ctx, "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "e1"), domain.ErrEventNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &domain.Event{ID: "missing"}), domain.ErrEventNotFound)
}

func TestEventRepo_SurvivesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	s, err := Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, NewEventRepo(s).Create(ctx, &domain.Event{ID: "e1", Title: "Jazz Night", Date: date(2030, 7, 10)}))

	reopened, err := Open(path)
	require.NoError(t, err)
	got, err := NewEventRepo(reopened).GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", got.Title)
	assert.True(t, got.Date.Equal(date(2030, 7, 10)))
}

func TestAdminRepo(t *testing.T) {
	s := New()
	repo := NewAdminRepo(s)
	ctx := context.Background()

	admin := &domain.AdminUser{ID: "a1", Email: "admin@pebbles.test", Role: domain.AdminRoleAdmin, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, admin))
	assert.ErrorIs(t, repo.Create(ctx, &domain.AdminUser{ID: "a2", Email: "admin@pebbles.test"}), domain.ErrEmailTaken)

	at := time.Now().UTC()
	require.NoError(t, repo.TouchLogin(ctx, "a1", at))

	got, err := repo.GetByEmail(ctx, "admin@pebbles.test")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(at))

	_, err = repo.GetByEmail(ctx, "nobody@pebbles.test")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}
