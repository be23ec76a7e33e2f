package ports

import (
	"context"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, room *domain.Room)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, room *domain.Room)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, room *domain.Room)
}
