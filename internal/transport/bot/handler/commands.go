package handler

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"event_finder/internal/domain"
	"event_finder/internal/domain/value"
	"event_finder/internal/transport/view"
	"event_finder/pkg/contextx"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/logx"
	"event_finder/pkg/lox"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnNearest(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.nearest(ctx, args(msg)))
}

func (h *Handler) OnEvent(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.event(ctx, args(msg)))
}

func (h *Handler) OnBuy(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.buy(withSender(ctx, msg), args(msg)))
}

func (h *Handler) OnGrid(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.grid(ctx))
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.status(ctx))
}

func (h *Handler) OnAddEvent(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.addEvent(withSender(ctx, msg), args(msg)))
}

func (h *Handler) nearest(ctx context.Context, args []string) string {
	if len(args) < 2 || len(args) > 3 {
		return usageNearest
	}

	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return usageNearest
	}

	limit := h.limit
	if len(args) == 3 {
		if limit, err = strconv.Atoi(args[2]); err != nil {
			return usageNearest
		}
	}

	listings, err := h.catalog.Nearest(ctx, p, limit)
	if err != nil {
		return replyError(ctx, err)
	}

	return fmt.Sprintf("📍 <b>Closest events to %s</b>\n\n%s", p, html.EscapeString(view.Listings(listings)))
}

func (h *Handler) event(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return usageEvent
	}

	id, err := value.ParseEventID(args[0])
	if err != nil {
		return usageEvent
	}

	event, err := h.catalog.Event(ctx, id)
	if err != nil {
		return replyError(ctx, err)
	}

	return pre(view.Event(event))
}

func (h *Handler) buy(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return usageBuy
	}

	id, err := value.ParseTicketID(args[0])
	if err != nil {
		return usageBuy
	}

	sale, err := h.catalog.Buy(ctx, id)
	if err != nil {
		return replyError(ctx, err)
	}

	return "✅ " + html.EscapeString(view.Sale(sale))
}

func (h *Handler) grid(ctx context.Context) string {
	return pre(h.catalog.Render(ctx))
}

func (h *Handler) status(ctx context.Context) string {
	stats := h.catalog.Stats(ctx)

	reporterStatus := "🔴 stopped"
	if h.reporter != nil && h.reporter.IsRunning() {
		reporterStatus = "🟢 running"
	}

	return fmt.Sprintf(`📊 <b>Inventory</b>

<b>Events:</b> %d (%d placed, %d sold out)
<b>Tickets:</b> %d (%d for sale)
<b>Reporter:</b> %s`,
		stats.Events, stats.PlacedEvents, stats.SoldOut,
		stats.Tickets, stats.UnsoldTickets,
		reporterStatus,
	)
}

func (h *Handler) addEvent(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return usageAddEvent
	}

	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return usageAddEvent
	}

	prices, err := lox.MapErr(args[2:], value.ParsePrice)
	if err != nil {
		return replyError(ctx, err)
	}

	event, err := h.catalog.OpenEvent(ctx, p, prices)
	if err != nil {
		return replyError(ctx, err)
	}

	return fmt.Sprintf("✅ %s opened at %s with %d tickets", event, p, len(prices))
}

// replyError turns a catalog error into a chat reply.
func replyError(ctx context.Context, err error) string {
	if domain.HasCode(err, errcodes.OutOfBounds) {
		return msgOutOfBounds
	}

	if appErr, ok := domain.AsAppError(err); ok {
		return "❌ " + html.EscapeString(appErr.Message)
	}

	logger(ctx).Error("bot command failed", logx.Error(err))

	return msgInternal
}

func parsePoint(x, y string) (value.Point, error) {
	return value.ParsePoint(x + "," + y)
}

// args returns the command arguments without the command itself.
func args(msg telego.Message) []string {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}

func withSender(ctx context.Context, msg telego.Message) context.Context {
	if msg.From == nil {
		return ctx
	}
	return contextx.WithUserID(ctx, contextx.UserID(strconv.FormatInt(msg.From.ID, 10)))
}

func pre(text string) string {
	return "<pre>" + html.EscapeString(text) + "</pre>"
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}
	return nil
}
