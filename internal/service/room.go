package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RoomService struct {
	roomRepo      ports.RoomRepo
	bookingRepo   ports.BookingRepo
	maxStayNights int
	logger        logger.Logger
}

func NewRoomService(
	roomRepo ports.RoomRepo,
	bookingRepo ports.BookingRepo,
	maxStayNights int,
	logger logger.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		maxStayNights: maxStayNights,
		logger:        logger,
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		OriginalPrice: input.OriginalPrice,
		MaxGuests:     input.MaxGuests,
		SizeLabel:     input.SizeLabel,
		Amenities:     input.Amenities,
		Rating:        input.Rating,
		ReviewCount:   input.ReviewCount,
		Available:     available,
		RoomType:      input.RoomType,
		Featured:      input.Featured,
		Category:      input.Category,
		Beds:          input.Beds,
		ImageURL:      input.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if room.Category == "" {
		room.Category = string(room.RoomType)
	}

	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room created",
		logger.String("room_id", room.ID),
		logger.String("name", room.Name),
	)

	return room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id string, input domain.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	input.Apply(room)
	room.UpdatedAt = time.Now().UTC()

	if err = validateRoom(room); err != nil {
		return nil, err
	}

	if err = s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.logger.Info("room updated", logger.String("room_id", room.ID))

	return room, nil
}

func (s *RoomService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.roomRepo.SetAvailability(ctx, id, available); err != nil {
		return fmt.Errorf("set room availability: %w", err)
	}

	s.logger.Info("room availability changed",
		logger.String("room_id", id),
		logger.Any("available", available),
	)

	return nil
}

// DeleteRoom удаляет номер, только если на него нет ни одной брони.
// Исторические брони сохраняются, поэтому номер с историей выводится
// из продажи через SetAvailability.
func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	bookings, err := s.bookingRepo.ListByRoom(ctx, id)
	if err != nil {
		return fmt.Errorf("list room bookings: %w", err)
	}
	if len(bookings) > 0 {
		return fmt.Errorf("delete room: %w", domain.ErrRoomHasBookings)
	}

	if err = s.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.logger.Info("room deleted", logger.String("room_id", id))

	return nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	res := make([]*domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if filter.Match(r) {
			res = append(res, r)
		}
	}

	return res, nil
}

// AvailableRooms отвечает на момент запроса и ничего не блокирует:
// окончательная проверка происходит в BookingService.Create.
func (s *RoomService) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]*domain.Room, error) {
	if guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", domain.ErrValidation)
	}

	rng, err := domain.NewDateRange(checkIn, checkOut, s.maxStayNights)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}

	return domain.AvailableRooms(rooms, bookings, rng, guests), nil
}

// IsRoomAvailable учитывает фактическое число гостей; guests < 1
// трактуется как 1.
func (s *RoomService) IsRoomAvailable(ctx context.Context, id string, checkIn, checkOut time.Time, guests int) (bool, error) {
	if guests < 1 {
		guests = 1
	}

	rng, err := domain.NewDateRange(checkIn, checkOut, s.maxStayNights)
	if err != nil {
		return false, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get room: %w", err)
	}

	bookings, err := s.bookingRepo.ListByRoom(ctx, id)
	if err != nil {
		return false, fmt.Errorf("list room bookings: %w", err)
	}

	return len(domain.AvailableRooms([]*domain.Room{room}, bookings, rng, guests)) == 1, nil
}

func (s *RoomService) CalculateTotalPrice(ctx context.Context, id string, checkIn, checkOut time.Time) (*domain.PriceQuote, error) {
	rng, err := domain.NewDateRange(checkIn, checkOut, s.maxStayNights)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	return quote(room, rng), nil
}

func quote(room *domain.Room, rng domain.DateRange) *domain.PriceQuote {
	nights := rng.Nights()
	return &domain.PriceQuote{
		RoomID:        room.ID,
		Nights:        nights,
		PricePerNight: room.PricePerNight,
		TotalPrice:    room.PricePerNight * int64(nights),
	}
}

func validateRoom(r *domain.Room) error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if r.PricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive", domain.ErrValidation)
	}
	if r.OriginalPrice != nil && *r.OriginalPrice < 0 {
		return fmt.Errorf("%w: original price must not be negative", domain.ErrValidation)
	}
	if r.MaxGuests < 1 {
		return fmt.Errorf("%w: max guests must be at least 1", domain.ErrValidation)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}
	if r.ReviewCount < 0 {
		return fmt.Errorf("%w: review count must not be negative", domain.ErrValidation)
	}
	if !r.RoomType.Valid() {
		return fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, r.RoomType)
	}
	return nil
}
