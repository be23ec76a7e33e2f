package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"

	publishTimeout = 5 * time.Second
)

// BookingEvent - сообщение, публикуемое в обменник при изменении брони.
type BookingEvent struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"bookingId"`
	RoomID           string    `json:"roomId"`
	RoomName         string    `json:"roomName"`
	ConfirmationCode string    `json:"confirmationCode"`
	CheckIn          time.Time `json:"checkIn"`
	CheckOut         time.Time `json:"checkOut"`
	TotalPrice       int64     `json:"totalPrice"`
	Status           string    `json:"status"`
	GuestEmail       string    `json:"guestEmail,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}

type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type AMQPNotifier struct {
	ch         Publisher
	conn       *amqp.Connection
	exchange   string
	routingKey string
	logger     logger.Logger
}

// NewAMQPNotifier подключается к брокеру и объявляет topic-обменник.
// Пустой url отключает публикацию.
func NewAMQPNotifier(url, exchange, routingKey string, log logger.Logger) (*AMQPNotifier, error) {
	n := &AMQPNotifier{exchange: exchange, routingKey: routingKey, logger: log}
	if url == "" {
		log.Warn("amqp url is empty, booking events disabled")
		return n, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	n.ch = ch
	n.conn = conn
	return n, nil
}

func (n *AMQPNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, room *domain.Room) {
	n.publish(ctx, EventBookingCreated, b, room)
}

func (n *AMQPNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, room *domain.Room) {
	n.publish(ctx, EventBookingConfirmed, b, room)
}

func (n *AMQPNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, room *domain.Room) {
	n.publish(ctx, EventBookingCancelled, b, room)
}

func (n *AMQPNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

// routing key: <prefix>.<event>, например hotel.booking.created
func (n *AMQPNotifier) key(event string) string {
	if n.routingKey == "" {
		return event
	}
	return n.routingKey + "." + event
}

func (n *AMQPNotifier) publish(ctx context.Context, event string, b *domain.Booking, room *domain.Room) {
	if n.ch == nil {
		return
	}

	msg := BookingEvent{
		Type:             event,
		BookingID:        b.ID,
		RoomID:           b.RoomID,
		RoomName:         room.Name,
		ConfirmationCode: b.ConfirmationCode,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		OccurredAt:       time.Now().UTC(),
	}
	if g := b.MainGuest(); g != nil {
		msg.GuestEmail = g.Email
	}

	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("failed to encode booking event",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.ch.PublishWithContext(ctx, n.exchange, n.key(event), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    b.ID + ":" + event,
		Timestamp:    msg.OccurredAt,
		Type:         event,
		Body:         body,
	})
	if err != nil {
		n.logger.Error("failed to publish booking event",
			logger.String("event", event),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Debug("booking event published",
		logger.String("event", event),
		logger.String("booking_id", b.ID),
	)
}
