package service

import (
	"context"
	"fmt"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/service/ports"
)

type StatsService struct {
	roomRepo    ports.RoomRepo
	bookingRepo ports.BookingRepo
	location    *time.Location
	now         func() time.Time
}

func NewStatsService(roomRepo ports.RoomRepo, bookingRepo ports.BookingRepo, location *time.Location) *StatsService {
	if location == nil {
		location = time.Local
	}
	return &StatsService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		location:    location,
		now:         time.Now,
	}
}

// Compute каждый раз пересчитывает сводку по текущему содержимому журнала.
func (s *StatsService) Compute(ctx context.Context) (*domain.AdminStats, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	st := domain.ComputeStats(rooms, bookings, s.now().In(s.location))
	return &st, nil
}
