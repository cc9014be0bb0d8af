package notifier

import (
	"context"
	"fmt"
	"html"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"event_finder/internal/domain/entity"
	"event_finder/internal/transport/view"
	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot posts every sale to a single chat.
type TelegramBot struct {
	bot     messageSender
	chatID  int64
	startup string
}

func NewTelegramBot(bot messageSender, chatID int64) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}
}

// WithStartupNotice makes Run post text to the chat before the first sale.
func (b *TelegramBot) WithStartupNotice(text string) *TelegramBot {
	b.startup = text
	return b
}

// Run forwards sales until ctx is done or the channel is closed. A failed
// startup notice is logged and does not stop the feed.
func (b *TelegramBot) Run(ctx context.Context, sales <-chan entity.Sale) error {
	if b.startup != "" {
		if err := b.SendText(ctx, b.startup); err != nil {
			logger(ctx).Error("failed to send startup notice", logx.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case sale, ok := <-sales:
			if !ok {
				return nil
			}
			if err := b.SendSale(ctx, sale); err != nil {
				logger(ctx).Error("failed to send sale",
					logx.TicketID(sale.TicketID),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) SendSale(ctx context.Context, sale entity.Sale) error {
	text := fmt.Sprintf("🎟 <b>Ticket sold</b>\n\n%s\n<i>%s</i>",
		html.EscapeString(view.Sale(sale)),
		sale.SoldAt.UTC().Format("2006-01-02 15:04:05 MST"),
	)

	msg := tu.Message(tu.ID(b.chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	if _, err := b.bot.SendMessage(ctx, tu.Message(tu.ID(b.chatID), text)); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
