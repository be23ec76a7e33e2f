package service

import (
	"context"
	"errors"
	"testing"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoomService(t *testing.T) (*RoomService, *mocks.MockRoomRepo, *mocks.MockBookingRepo) {
	t.Helper()
	roomRepo := mocks.NewMockRoomRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	return NewRoomService(roomRepo, bookingRepo, 30, newTestLogger(t)), roomRepo, bookingRepo
}

func TestRoomService_CreateRoom_Success(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	room, err := svc.CreateRoom(context.Background(), domain.CreateRoomInput{
		Name:          "  Garden Room ",
		PricePerNight: 150,
		MaxGuests:     2,
		RoomType:      domain.RoomTypeStandard,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "Garden Room", room.Name)
	assert.True(t, room.Available)
	assert.Equal(t, "standard", room.Category)
	assert.NotNil(t, room.Amenities)
}

func TestRoomService_CreateRoom_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateRoomInput
	}{
		{"empty name", domain.CreateRoomInput{PricePerNight: 100, MaxGuests: 1, RoomType: domain.RoomTypeStandard}},
		{"zero price", domain.CreateRoomInput{Name: "A", MaxGuests: 1, RoomType: domain.RoomTypeStandard}},
		{"no capacity", domain.CreateRoomInput{Name: "A", PricePerNight: 100, RoomType: domain.RoomTypeStandard}},
		{"bad type", domain.CreateRoomInput{Name: "A", PricePerNight: 100, MaxGuests: 1, RoomType: "penthouse"}},
		{"rating too high", domain.CreateRoomInput{Name: "A", PricePerNight: 100, MaxGuests: 1, RoomType: domain.RoomTypeStandard, Rating: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newRoomService(t)

			_, err := svc.CreateRoom(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRoomService_UpdateRoom_PriceDoesNotTouchBookings(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{
		ID: "r1", Name: "Deluxe", PricePerNight: 280, MaxGuests: 2, RoomType: domain.RoomTypeDeluxe,
	}, nil)
	roomRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.PricePerNight == 300
	})).Return(nil)

	price := int64(300)
	room, err := svc.UpdateRoom(context.Background(), "r1", domain.UpdateRoomInput{PricePerNight: &price})

	require.NoError(t, err)
	assert.Equal(t, int64(300), room.PricePerNight)
}

func TestRoomService_UpdateRoom_NotFound(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.UpdateRoom(context.Background(), "missing", domain.UpdateRoomInput{})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_DeleteRoom_WithHistory(t *testing.T) {
	svc, _, bookingRepo := newRoomService(t)

	bookingRepo.EXPECT().ListByRoom(mock.Anything, "r1").Return([]*domain.Booking{
		{ID: "b1", RoomID: "r1", Status: domain.BookingStatusCancelled},
	}, nil)

	err := svc.DeleteRoom(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrRoomHasBookings)
}

func TestRoomService_DeleteRoom_Success(t *testing.T) {
	svc, roomRepo, bookingRepo := newRoomService(t)

	bookingRepo.EXPECT().ListByRoom(mock.Anything, "r1").Return(nil, nil)
	roomRepo.EXPECT().Delete(mock.Anything, "r1").Return(nil)

	require.NoError(t, svc.DeleteRoom(context.Background(), "r1"))
}

func TestRoomService_SetAvailability_Error(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().SetAvailability(mock.Anything, "r1", false).Return(domain.ErrRoomNotFound)

	err := svc.SetAvailability(context.Background(), "r1", false)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_ListRooms_Filter(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().List(mock.Anything).Return([]*domain.Room{
		{ID: "r1", RoomType: domain.RoomTypeSuite},
		{ID: "r2", RoomType: domain.RoomTypeStandard},
	}, nil)

	rooms, err := svc.ListRooms(context.Background(), domain.RoomFilter{RoomType: domain.RoomTypeSuite})

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "r1", rooms[0].ID)
}

func TestRoomService_AvailableRooms(t *testing.T) {
	svc, roomRepo, bookingRepo := newRoomService(t)

	rooms := []*domain.Room{
		{ID: "busy", MaxGuests: 2, Available: true},
		{ID: "free", MaxGuests: 2, Available: true},
		{ID: "small", MaxGuests: 1, Available: true},
		{ID: "off", MaxGuests: 4, Available: false},
	}
	roomRepo.EXPECT().List(mock.Anything).Return(rooms, nil)
	bookingRepo.EXPECT().ListOverlapping(mock.Anything, mock.Anything).Return([]*domain.Booking{
		{RoomID: "busy", CheckIn: date(2024, 6, 2), CheckOut: date(2024, 6, 5), Status: domain.BookingStatusPending},
	}, nil)

	got, err := svc.AvailableRooms(context.Background(), date(2024, 6, 1), date(2024, 6, 4), 2)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "free", got[0].ID)
}

func TestRoomService_AvailableRooms_InvalidInput(t *testing.T) {
	svc, _, _ := newRoomService(t)

	_, err := svc.AvailableRooms(context.Background(), date(2024, 6, 1), date(2024, 6, 4), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AvailableRooms(context.Background(), date(2024, 6, 4), date(2024, 6, 1), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRoomService_AvailableRooms_RepoError(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.AvailableRooms(context.Background(), date(2024, 6, 1), date(2024, 6, 4), 1)

	require.Error(t, err)
}

func TestRoomService_IsRoomAvailable(t *testing.T) {
	room := &domain.Room{ID: "r1", MaxGuests: 2, Available: true}
	booked := []*domain.Booking{
		{RoomID: "r1", CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 4), Status: domain.BookingStatusConfirmed},
	}

	tests := []struct {
		name     string
		checkIn  int
		checkOut int
		guests   int
		want     bool
	}{
		{"back to back after", 4, 6, 2, true},
		{"overlapping", 3, 5, 2, false},
		{"too many guests", 10, 12, 3, false},
		{"zero guests counts as one", 10, 12, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, roomRepo, bookingRepo := newRoomService(t)
			roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
			bookingRepo.EXPECT().ListByRoom(mock.Anything, "r1").Return(booked, nil)

			ok, err := svc.IsRoomAvailable(context.Background(), "r1",
				date(2024, 6, tt.checkIn), date(2024, 6, tt.checkOut), tt.guests)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestRoomService_IsRoomAvailable_UnknownRoom(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.IsRoomAvailable(context.Background(), "missing", date(2024, 6, 1), date(2024, 6, 2), 1)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_CalculateTotalPrice(t *testing.T) {
	svc, roomRepo, _ := newRoomService(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", PricePerNight: 450}, nil)

	q, err := svc.CalculateTotalPrice(context.Background(), "r1", date(2024, 6, 1), date(2024, 6, 6))

	require.NoError(t, err)
	assert.Equal(t, 5, q.Nights)
	assert.Equal(t, int64(2250), q.TotalPrice)
}

func TestRoomService_CalculateTotalPrice_InvalidRange(t *testing.T) {
	svc, _, _ := newRoomService(t)

	_, err := svc.CalculateTotalPrice(context.Background(), "r1", date(2024, 6, 1), date(2024, 6, 1))

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
