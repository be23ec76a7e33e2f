package ports

import (
	"context"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type BookingRepo interface {
	// Reserve атомарно проверяет пересечение с неотмененными бронями номера
	// и сохраняет бронь. При пересечении возвращает domain.ErrRoomUnavailable,
	// при занятом коде подтверждения - domain.ErrConfirmationCodeTaken.
	Reserve(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
	ListOverlapping(ctx context.Context, rng domain.DateRange) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}
