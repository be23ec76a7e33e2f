package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier отправляет уведомления о бронях в чат ресепшена.
type TelegramNotifier struct {
	bot    MessageSender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, room *domain.Room) {
	n.send(ctx, b, "*Новая бронь, ожидает подтверждения*\n\n"+summary(b, room))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, room *domain.Room) {
	n.send(ctx, b, "*Бронь подтверждена*\n\n"+summary(b, room))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, room *domain.Room) {
	n.send(ctx, b, "*Бронь отменена*\n\n"+summary(b, room))
}

func summary(b *domain.Booking, room *domain.Room) string {
	guest := "-"
	if g := b.MainGuest(); g != nil {
		guest = g.FirstName + " " + g.LastName
	}
	return fmt.Sprintf(
		"Код: %s\nНомер: %s\nДаты: %s - %s (%d ноч.)\nГость: %s\nГостей: %d + %d\nСумма: %d",
		b.ConfirmationCode,
		room.Name,
		b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout), b.Range().Nights(),
		guest,
		b.AdultCount, b.ChildrenCount,
		b.TotalPrice,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, b *domain.Booking, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)",
			logger.String("booking_id", b.ID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("booking_id", b.ID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}
