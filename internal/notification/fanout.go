package notification

import (
	"context"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/service/ports"
)

// Fanout рассылает каждое уведомление всем получателям по очереди.
type Fanout []ports.BookingNotifier

func (f Fanout) NotifyBookingCreated(ctx context.Context, b *domain.Booking, room *domain.Room) {
	for _, n := range f {
		n.NotifyBookingCreated(ctx, b, room)
	}
}

func (f Fanout) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, room *domain.Room) {
	for _, n := range f {
		n.NotifyBookingConfirmed(ctx, b, room)
	}
}

func (f Fanout) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, room *domain.Room) {
	for _, n := range f {
		n.NotifyBookingCancelled(ctx, b, room)
	}
}
