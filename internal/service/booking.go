package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingOptions struct {
	MaxStayNights int
	CodeAttempts  int
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	codes       ports.CodeGenerator
	notifier    ports.BookingNotifier
	validate    *validator.Validate
	opts        BookingOptions
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	codes ports.CodeGenerator,
	notifier ports.BookingNotifier,
	opts BookingOptions,
	logger logger.Logger,
) *BookingService {
	if opts.CodeAttempts < 1 {
		opts.CodeAttempts = 1
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		codes:       codes,
		notifier:    notifier,
		validate:    validator.New(),
		opts:        opts,
		logger:      logger,
	}
}

// Create проверяет входные данные, фиксирует цену и резервирует номер.
// Новая бронь всегда pending/pending, статусы меняет только администратор.
// Проверка пересечений и вставка выполняются хранилищем атомарно.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	rng, err := domain.NewDateRange(input.CheckIn, input.CheckOut, s.opts.MaxStayNights)
	if err != nil {
		return nil, err
	}

	guests, err := s.normalizeGuests(input.Guests)
	if err != nil {
		return nil, err
	}

	if err = validateParty(input.AdultCount, input.ChildrenCount); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if !room.Available {
		return nil, fmt.Errorf("check room: %w", domain.ErrRoomUnavailable)
	}
	if party := input.AdultCount + input.ChildrenCount; party > room.MaxGuests {
		return nil, fmt.Errorf("%w: party of %d exceeds room capacity of %d",
			domain.ErrValidation, party, room.MaxGuests)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		RoomID:          room.ID,
		CheckIn:         rng.CheckIn,
		CheckOut:        rng.CheckOut,
		Guests:          guests,
		AdultCount:      input.AdultCount,
		ChildrenCount:   input.ChildrenCount,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		TotalPrice:      quote(room, rng).TotalPrice,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for attempt := 1; ; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate confirmation code: %w", err)
		}
		booking.ConfirmationCode = code

		err = s.bookingRepo.Reserve(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConfirmationCodeTaken) && attempt < s.opts.CodeAttempts {
			s.logger.Warn("confirmation code collision, regenerating",
				logger.Int("attempt", attempt),
			)
			continue
		}
		return nil, fmt.Errorf("reserve room: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", booking.RoomID),
		logger.String("confirmation_code", booking.ConfirmationCode),
		logger.Int64("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking.Clone(), room)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByConfirmationCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("get booking by code: %w", err)
	}
	return b, nil
}

// List возвращает брони по фильтру, новые первыми.
func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Match(b) {
			res = append(res, b)
		}
	}

	return res, nil
}

// ListByRoom включает отмененные брони.
func (s *BookingService) ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	bookings, err := s.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	prev := b.Status

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *input.Status)
		}
		if prev == domain.BookingStatusCancelled && *input.Status != domain.BookingStatusCancelled {
			return nil, fmt.Errorf("update booking: %w", domain.ErrBookingCancelled)
		}
		b.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.Valid() {
			return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, *input.PaymentStatus)
		}
		b.PaymentStatus = *input.PaymentStatus
	}
	if input.SpecialRequests != nil {
		b.SpecialRequests = strings.TrimSpace(*input.SpecialRequests)
	}
	if input.Guests != nil {
		if b.Guests, err = s.normalizeGuests(input.Guests); err != nil {
			return nil, err
		}
	}
	if input.AdultCount != nil {
		b.AdultCount = *input.AdultCount
	}
	if input.ChildrenCount != nil {
		b.ChildrenCount = *input.ChildrenCount
	}
	if err = validateParty(b.AdultCount, b.ChildrenCount); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if party := b.AdultCount + b.ChildrenCount; party > room.MaxGuests {
		return nil, fmt.Errorf("%w: party of %d exceeds room capacity of %d",
			domain.ErrValidation, party, room.MaxGuests)
	}

	b.UpdatedAt = time.Now().UTC()
	if err = s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", b.ID),
		logger.String("status", string(b.Status)),
		logger.String("payment_status", string(b.PaymentStatus)),
	)

	if b.Status != prev {
		switch b.Status {
		case domain.BookingStatusConfirmed:
			go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), b.Clone(), room)
		case domain.BookingStatusCancelled:
			go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), b.Clone(), room)
		}
	}

	return b, nil
}

// Cancel идемпотентна: повторная отмена ничего не меняет и не считается ошибкой.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if b.Status == domain.BookingStatusCancelled {
		return b, nil
	}

	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = time.Now().UTC()
	if err = s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("room_id", b.RoomID),
	)

	room, err := s.roomRepo.GetByID(ctx, b.RoomID)
	if err != nil {
		s.logger.Error("failed to get room for cancel notification",
			logger.String("room_id", b.RoomID),
			logger.String("error", err.Error()),
		)
		return b, nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), b.Clone(), room)

	return b, nil
}

// CompleteFinished переводит подтвержденные брони с прошедшей датой выезда
// в статус completed.
func (s *BookingService) CompleteFinished(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteFinished(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("finished stays completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

func (s *BookingService) normalizeGuests(in []domain.Guest) ([]domain.Guest, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: at least one guest is required", domain.ErrValidation)
	}

	guests := make([]domain.Guest, len(in))
	main := 0
	for i, g := range in {
		g.FirstName = strings.TrimSpace(g.FirstName)
		g.LastName = strings.TrimSpace(g.LastName)
		g.Email = strings.TrimSpace(g.Email)
		g.Phone = strings.TrimSpace(g.Phone)

		if err := s.validate.Struct(g); err != nil {
			return nil, guestError(i, err)
		}
		if g.IsMainGuest {
			main++
		}
		guests[i] = g
	}

	switch {
	case main == 0 && len(guests) == 1:
		guests[0].IsMainGuest = true
	case main == 0:
		return nil, fmt.Errorf("%w: one guest must be marked as the main guest", domain.ErrValidation)
	case main > 1:
		return nil, fmt.Errorf("%w: only one guest can be the main guest", domain.ErrValidation)
	}

	return guests, nil
}

func guestError(i int, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: guest %d: %s failed %q check",
			domain.ErrValidation, i+1, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: guest %d: %s", domain.ErrValidation, i+1, err.Error())
}

func validateParty(adults, children int) error {
	if adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", domain.ErrValidation)
	}
	if children < 0 {
		return fmt.Errorf("%w: children count must not be negative", domain.ErrValidation)
	}
	return nil
}
