package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"event_finder/internal/domain"
	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/value"
	"event_finder/internal/transport/view"
	"event_finder/pkg/contextx"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultLimit = 5

	shellUserID = contextx.UserID("shell")

	prompt         = "Enter your coordinates (x,y): "
	msgBadFormat   = "Incorrect Format!"
	msgOutOfBounds = "Coordinates are out of bounds!"
)

const help = `Commands:
  x,y or (x,y)   closest events to the coordinates
  event <id>     event details and tickets
  buy <id>       buy a ticket
  grid           print the events grid
  help           show this message
  quit           leave`

type catalogService interface {
	Render(ctx context.Context) string
	Nearest(ctx context.Context, p value.Point, limit int) ([]entity.Listing, error)
	Event(ctx context.Context, id int64) (*entity.Event, error)
	Buy(ctx context.Context, ticketID int64) (entity.Sale, error)
}

// Shell is the interactive event finder. Bad input is reported and the loop
// carries on; only quit, EOF or context cancellation end it.
type Shell struct {
	catalog catalogService
	limit   int
	in      *bufio.Scanner
	out     io.Writer
}

func NewShell(catalog catalogService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog: catalog,
		limit:   DefaultLimit,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (s *Shell) WithLimit(limit int) *Shell {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

func (s *Shell) Run(ctx context.Context) error {
	ctx = contextx.WithUserID(ctx, shellUserID)

	s.printf("##### Event Manager #####\nSee below the events grid:\n%s\n", s.catalog.Render(ctx))
	s.printf("\n##### Find An Event #####\n")

	for {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		s.printf("%s", prompt)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("scanner.Scan: %w", err)
			}
			return nil
		}

		if quit := s.handle(ctx, strings.TrimSpace(s.in.Text())); quit {
			return nil
		}
	}
}

func (s *Shell) handle(ctx context.Context, line string) bool {
	command, arg, _ := strings.Cut(line, " ")

	switch strings.ToLower(command) {
	case "":
		s.println(msgBadFormat)
	case "quit", "exit":
		return true
	case "help":
		s.println(help)
	case "grid":
		s.println(s.catalog.Render(ctx))
	case "event":
		s.showEvent(ctx, arg)
	case "buy":
		s.buy(ctx, arg)
	default:
		s.nearest(ctx, line)
	}

	return false
}

func (s *Shell) nearest(ctx context.Context, line string) {
	p, err := value.ParsePoint(line)
	if err != nil {
		s.println(msgBadFormat)
		return
	}

	listings, err := s.catalog.Nearest(ctx, p, s.limit)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.printf("Closest Events to %s:\n%s\n", p, view.Listings(listings))
}

func (s *Shell) showEvent(ctx context.Context, arg string) {
	id, err := value.ParseEventID(arg)
	if err != nil {
		s.println(msgBadFormat)
		return
	}

	event, err := s.catalog.Event(ctx, id)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.println(view.Event(event))
}

func (s *Shell) buy(ctx context.Context, arg string) {
	id, err := value.ParseTicketID(arg)
	if err != nil {
		s.println(msgBadFormat)
		return
	}

	sale, err := s.catalog.Buy(ctx, id)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.println(view.Sale(sale))
}

func (s *Shell) fail(ctx context.Context, err error) {
	appErr, ok := domain.AsAppError(err)

	switch {
	case ok && appErr.Code == errcodes.OutOfBounds:
		s.println(msgOutOfBounds)
	case ok:
		s.println(appErr.Message)
	default:
		logger(ctx).Error("shell command failed", logx.Error(err))
		s.println("Something went wrong, try again.")
	}
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
