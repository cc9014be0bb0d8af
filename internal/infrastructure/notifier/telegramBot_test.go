package notifier_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"event_finder/internal/domain/entity"
	"event_finder/internal/infrastructure/notifier"
)

type senderMock struct {
	mu   sync.Mutex
	sent []*telego.SendMessageParams
	err  error
}

func (s *senderMock) SendMessage(_ context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, params)

	return &telego.Message{}, s.err
}

func (s *senderMock) messages() []*telego.SendMessageParams {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*telego.SendMessageParams(nil), s.sent...)
}

func TestSendSale(t *testing.T) {
	rq := require.New(t)

	sender := &senderMock{}
	bot := notifier.NewTelegramBot(sender, 100)

	err := bot.SendSale(context.Background(), entity.Sale{
		TicketID: 3,
		EventID:  1,
		Price:    decimal.RequireFromString("19.99"),
		Buyer:    "bob",
		SoldAt:   time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC),
	})
	rq.NoError(err)

	sent := sender.messages()
	rq.Len(sent, 1)
	rq.Equal(int64(100), sent[0].ChatID.ID)
	rq.Equal(telego.ModeHTML, sent[0].ParseMode)
	rq.Equal("🎟 <b>Ticket sold</b>\n\nTicket 3 for Event 001 sold for $19.99 to bob\n<i>2026-05-04 18:30:00 UTC</i>", sent[0].Text)

	rq.NoError(bot.SendText(context.Background(), "hello"))
	rq.Equal("hello", sender.messages()[1].Text)
}

func TestRun(t *testing.T) {
	rq := require.New(t)

	sender := &senderMock{err: errors.New("telegram is down")}
	bot := notifier.NewTelegramBot(sender, 1)

	sales := make(chan entity.Sale, 2)
	sales <- entity.Sale{TicketID: 1}
	sales <- entity.Sale{TicketID: 2}
	close(sales)

	// Send failures are logged and the loop carries on until the feed closes.
	rq.NoError(bot.Run(context.Background(), sales))
	rq.Len(sender.messages(), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rq.ErrorIs(bot.Run(ctx, make(chan entity.Sale)), context.Canceled)
}

func TestRunSendsStartupNotice(t *testing.T) {
	rq := require.New(t)

	sender := &senderMock{}
	bot := notifier.NewTelegramBot(sender, 42).WithStartupNotice("event-finder v1.2.0 is up, 25 events on the grid")

	sales := make(chan entity.Sale, 1)
	sales <- entity.Sale{TicketID: 7, EventID: 3, Price: decimal.RequireFromString("5"), SoldAt: time.Unix(0, 0)}
	close(sales)

	rq.NoError(bot.Run(context.Background(), sales))

	sent := sender.messages()
	rq.Len(sent, 2)
	rq.Equal("event-finder v1.2.0 is up, 25 events on the grid", sent[0].Text)
	rq.Equal(int64(42), sent[0].ChatID.ID)
	rq.Contains(sent[1].Text, "Ticket 7 for Event 003")
}

func TestRunStartupNoticeFailureKeepsFeed(t *testing.T) {
	rq := require.New(t)

	sender := &senderMock{err: errors.New("chat not found")}
	bot := notifier.NewTelegramBot(sender, 42).WithStartupNotice("up")

	sales := make(chan entity.Sale)
	close(sales)

	rq.NoError(bot.Run(context.Background(), sales))
	rq.Len(sender.messages(), 1)
}
