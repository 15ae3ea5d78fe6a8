package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

// TelegramNotifier posts every confirmed booking to the operations chat, so
// the venue owners can follow up with the client.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, actor domain.Actor, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*¡Reserva confirmada!*\n\n"+
			"Espacio: %s\n"+
			"Fecha: %s • %s (%d horas)\n"+
			"Invitados: %d\n"+
			"Total pagado: $%d CLP\n"+
			"Cliente: %s",
		booking.SpaceName,
		booking.EventDate.Format("02.01.2006"),
		booking.StartTime,
		booking.DurationHours,
		booking.GuestCount,
		booking.TotalPrice,
		actor.Email,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.opsChatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}
