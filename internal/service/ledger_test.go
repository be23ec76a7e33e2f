package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/confirmation"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/repository/memory"
	"github.com/octet-systems/pebbleshotel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledger struct {
	rooms       *RoomService
	bookings    *BookingService
	stats       *StatsService
	roomRepo    *memory.RoomRepository
	bookingRepo *memory.BookingRepository
	notifier    *mocks.MockBookingNotifier
	roomID      string
}

// newLedger собирает сервисы поверх хранилища в памяти с одним номером Deluxe.
func newLedger(t *testing.T) *ledger {
	t.Helper()

	store := memory.New()
	roomRepo := memory.NewRoomRepo(store)
	bookingRepo := memory.NewBookingRepo(store)

	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	log := newTestLogger(t)
	l := &ledger{
		rooms: NewRoomService(roomRepo, bookingRepo, 30, log),
		bookings: NewBookingService(bookingRepo, roomRepo, confirmation.NewGenerator(confirmation.DefaultLength), notifier,
			BookingOptions{MaxStayNights: 30, CodeAttempts: 5}, log),
		stats:       NewStatsService(roomRepo, bookingRepo, time.UTC),
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}

	room, err := l.rooms.CreateRoom(context.Background(), domain.CreateRoomInput{
		Name:          "Deluxe",
		PricePerNight: 280,
		MaxGuests:     2,
		RoomType:      domain.RoomTypeDeluxe,
		Rating:        4.7,
	})
	require.NoError(t, err)
	l.roomID = room.ID

	return l
}

func (l *ledger) book(ctx context.Context, ci, co time.Time) (*domain.Booking, error) {
	return l.bookings.Create(ctx, domain.CreateBookingInput{
		RoomID:   l.roomID,
		CheckIn:  ci,
		CheckOut: co,
		Guests: []domain.Guest{{
			FirstName: "Mike",
			LastName:  "Johnson",
			Email:     "mike.j@example.com",
			Phone:     "5555555555",
		}},
		AdultCount: 2,
	})
}

// bookConfirmed создает бронь и подтверждает ее, как это делает администратор.
func (l *ledger) bookConfirmed(t *testing.T, ci, co time.Time) *domain.Booking {
	t.Helper()
	ctx := context.Background()

	b, err := l.book(ctx, ci, co)
	require.NoError(t, err)

	status := domain.BookingStatusConfirmed
	b, err = l.bookings.Update(ctx, b.ID, domain.UpdateBookingInput{Status: &status})
	require.NoError(t, err)
	return b
}

func availableIDs(rooms []*domain.Room) []string {
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestLedger_CheckoutDayIsFree(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	l.bookConfirmed(t, date(2024, 6, 1), date(2024, 6, 5))

	free, err := l.rooms.AvailableRooms(ctx, date(2024, 6, 5), date(2024, 6, 8), 2)
	require.NoError(t, err)
	assert.Contains(t, availableIDs(free), l.roomID)

	busy, err := l.rooms.AvailableRooms(ctx, date(2024, 6, 4), date(2024, 6, 6), 2)
	require.NoError(t, err)
	assert.NotContains(t, availableIDs(busy), l.roomID)

	time.Sleep(50 * time.Millisecond)
}

func TestLedger_CancelFreesDates(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	b, err := l.book(ctx, date(2024, 6, 1), date(2024, 6, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(840), b.TotalPrice)

	_, err = l.book(ctx, date(2024, 6, 2), date(2024, 6, 3))
	require.ErrorIs(t, err, domain.ErrRoomUnavailable)

	_, err = l.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)
	again, err := l.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, again.Status)

	ok, err := l.rooms.IsRoomAvailable(ctx, l.roomID, date(2024, 6, 1), date(2024, 6, 4), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = l.book(ctx, date(2024, 6, 2), date(2024, 6, 3))
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestLedger_ConcurrentCreateSingleWinner(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	const callers = 16
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes []string
		lost  int
	)

	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			b, err := l.book(ctx, date(2024, 8, 10), date(2024, 8, 12))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				codes = append(codes, b.ConfirmationCode)
			case errors.Is(err, domain.ErrRoomUnavailable):
				lost++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Len(t, codes, 1)
	assert.Equal(t, callers-1, lost)

	time.Sleep(50 * time.Millisecond)
}

func TestLedger_PriceLockedAtCreation(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	b := l.bookConfirmed(t, date(2024, 9, 1), date(2024, 9, 3))

	price := int64(999)
	_, err := l.rooms.UpdateRoom(ctx, l.roomID, domain.UpdateRoomInput{PricePerNight: &price})
	require.NoError(t, err)

	got, err := l.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(560), got.TotalPrice)

	st, err := l.stats.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(560), st.TotalRevenue)
	assert.Equal(t, 100, st.OccupancyRate)

	assert.ErrorIs(t, l.rooms.DeleteRoom(ctx, l.roomID), domain.ErrRoomHasBookings)

	time.Sleep(50 * time.Millisecond)
}

// staleReadRepo отдает копию брони, прочитанную до вмешательства между
// чтением и записью.
type staleReadRepo struct {
	*memory.BookingRepository
	between func()
	once    sync.Once
}

func (r *staleReadRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := r.BookingRepository.GetByID(ctx, id)
	r.once.Do(r.between)
	return b, err
}

func TestLedger_UpdateWithStaleReadCannotReviveCancelled(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	first, err := l.book(ctx, date(2030, 6, 1), date(2030, 6, 5))
	require.NoError(t, err)

	stale := &staleReadRepo{BookingRepository: l.bookingRepo}
	stale.between = func() {
		_, err := l.bookings.Cancel(ctx, first.ID)
		require.NoError(t, err)
		_, err = l.book(ctx, date(2030, 6, 1), date(2030, 6, 5))
		require.NoError(t, err)
	}
	racy := NewBookingService(stale, l.roomRepo, confirmation.NewGenerator(confirmation.DefaultLength),
		l.notifier, BookingOptions{MaxStayNights: 30, CodeAttempts: 5}, newTestLogger(t))

	status := domain.BookingStatusConfirmed
	_, err = racy.Update(ctx, first.ID, domain.UpdateBookingInput{Status: &status})
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)

	byRoom, err := l.bookings.ListByRoom(ctx, l.roomID)
	require.NoError(t, err)
	blocking := 0
	for _, b := range byRoom {
		if b.Blocks() {
			blocking++
		}
	}
	assert.Equal(t, 1, blocking)

	time.Sleep(50 * time.Millisecond)
}
