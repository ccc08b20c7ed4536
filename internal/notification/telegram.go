package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, owner *domain.User, booking *domain.Booking, propertyTitle string) {
	text := fmt.Sprintf(
		"*New booking request*\n\nProperty: %s\nDates: %s to %s\nTotal: %.2f\n\nApprove or reject it in your dashboard.",
		propertyTitle,
		booking.StartDate.Format(domain.DateLayout),
		booking.EndDate.Format(domain.DateLayout),
		booking.TotalPrice,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, customer *domain.User, booking *domain.Booking, propertyTitle string) {
	text := fmt.Sprintf(
		"*Booking approved!*\n\nProperty: %s\nDates: %s to %s\nTotal: %.2f\n\nComplete the payment to finish your booking.",
		propertyTitle,
		booking.StartDate.Format(domain.DateLayout),
		booking.EndDate.Format(domain.DateLayout),
		booking.TotalPrice,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, customer *domain.User, booking *domain.Booking, propertyTitle string) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\nProperty: %s\nDates: %s to %s",
		propertyTitle,
		booking.StartDate.Format(domain.DateLayout),
		booking.EndDate.Format(domain.DateLayout),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, owner *domain.User, payment *domain.Payment, propertyTitle string) {
	text := fmt.Sprintf(
		"*Payment received*\n\nProperty: %s\nAmount: %.2f\nMethod: %s",
		propertyTitle, payment.Amount, payment.Method,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
