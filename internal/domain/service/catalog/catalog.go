package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"event_finder/internal/clock"
	"event_finder/internal/domain"
	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/value"
	"event_finder/pkg/contextx"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const searchCacheCleanupInterval = 10 * time.Minute

// Stats is a point-in-time inventory summary.
type Stats struct {
	Events        int
	PlacedEvents  int
	Tickets       int
	UnsoldTickets int
	SoldOut       int // placed events with tickets but none left for sale
}

// Catalog owns the grid, every event and the ticket lookup index. All
// identifiers are assigned here.
type Catalog struct {
	grid        *entity.Grid
	clock       clock.Clock
	sales       chan<- entity.Sale
	searchCache *cache.Cache

	mu           sync.RWMutex
	events       map[int64]*entity.Event
	eventOrder   []*entity.Event
	tickets      map[int64]*entity.Ticket
	nextEventID  int64
	nextTicketID int64
}

func New(grid *entity.Grid) *Catalog {
	return &Catalog{
		grid:    grid,
		clock:   clock.NewSystem(),
		events:  make(map[int64]*entity.Event),
		tickets: make(map[int64]*entity.Ticket),
	}
}

// WithSales publishes every sale to ch. Publishing never blocks a purchase.
func (c *Catalog) WithSales(ch chan<- entity.Sale) *Catalog {
	c.sales = ch
	return c
}

// WithSearchCache caches nearest-search results for ttl. The cache is flushed
// whenever an event is placed.
func (c *Catalog) WithSearchCache(ttl time.Duration) *Catalog {
	if ttl > 0 {
		c.searchCache = cache.New(ttl, searchCacheCleanupInterval)
	}
	return c
}

func (c *Catalog) WithClock(clk clock.Clock) *Catalog {
	c.clock = clk
	return c
}

func (c *Catalog) Bounds() value.Bounds {
	return c.grid.Bounds()
}

// CreateEvent registers a new event without tickets or location.
func (c *Catalog) CreateEvent(ctx context.Context) *entity.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.createEvent(ctx)
}

func (c *Catalog) createEvent(ctx context.Context) *entity.Event {
	event := entity.NewEvent(c.nextEventID)
	c.nextEventID++

	c.events[event.ID()] = event
	c.eventOrder = append(c.eventOrder, event)

	logger(ctx).Debug("event created", logx.EventID(event.ID()))

	return event
}

// OpenEvent creates an event at p with one ticket per price. Either all of it
// happens or nothing is registered.
func (c *Catalog) OpenEvent(ctx context.Context, p value.Point, prices []decimal.Decimal) (*entity.Event, error) {
	for _, price := range prices {
		if !price.IsPositive() {
			return nil, domain.Errorf(errcodes.InvalidPrice, "price must be positive, got %s", price)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.grid.ValidCoordinate(p) {
		return nil, domain.Errorf(errcodes.OutOfBounds, "%s is outside %s", p, c.grid.Bounds())
	}

	if c.grid.EventAt(p) != nil {
		return nil, domain.Errorf(errcodes.CellOccupied, "cell %s is occupied", p)
	}

	event := c.createEvent(ctx)

	// Placement goes through the catalog write lock, so the cell is still free.
	if _, err := c.grid.Place(event, p); err != nil {
		return nil, fmt.Errorf("grid.Place: %w", err)
	}

	for _, price := range prices {
		if _, err := c.addTicket(ctx, event, price); err != nil {
			return nil, err
		}
	}

	c.placed(ctx, event, p)

	return event, nil
}

// AddTicket creates a ticket for the event. Nothing is created when the price
// is not positive.
func (c *Catalog) AddTicket(ctx context.Context, eventID int64, price decimal.Decimal) (*entity.Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, ok := c.events[eventID]
	if !ok {
		return nil, eventNotFound(eventID)
	}

	return c.addTicket(ctx, event, price)
}

func (c *Catalog) addTicket(ctx context.Context, event *entity.Event, price decimal.Decimal) (*entity.Ticket, error) {
	ticket, err := entity.NewTicket(c.nextTicketID, event.ID(), price)
	if err != nil {
		return nil, fmt.Errorf("entity.NewTicket: %w", err)
	}

	if err := event.AddTicket(ticket); err != nil {
		return nil, fmt.Errorf("event.AddTicket: %w", err)
	}

	c.nextTicketID++
	c.tickets[ticket.ID()] = ticket

	logger(ctx).Debug("ticket added",
		logx.EventID(event.ID()),
		logx.TicketID(ticket.ID()),
		slog.String(logx.FieldPrice, value.FormatPrice(price)),
	)

	return ticket, nil
}

// PlaceEvent puts a registered event on the grid.
func (c *Catalog) PlaceEvent(ctx context.Context, eventID int64, p value.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, ok := c.events[eventID]
	if !ok {
		return eventNotFound(eventID)
	}

	if location, placed := event.Location(); placed {
		return domain.Errorf(errcodes.EventAlreadyPlaced, "%s is already placed at %s", event, location)
	}

	ok, err := c.grid.Place(event, p)
	if err != nil {
		return fmt.Errorf("grid.Place: %w", err)
	}

	if !ok {
		return domain.Errorf(errcodes.CellOccupied, "cell %s is occupied", p)
	}

	c.placed(ctx, event, p)

	return nil
}

func (c *Catalog) placed(ctx context.Context, event *entity.Event, p value.Point) {
	if c.searchCache != nil {
		c.searchCache.Flush()
	}

	eventsPlacedTotal.Inc()

	logger(ctx).Debug("event placed",
		logx.EventID(event.ID()),
		logx.Stringer(logx.FieldLocation, p),
	)
}

// Nearest returns up to limit events closest to p with their cheapest ticket.
func (c *Catalog) Nearest(ctx context.Context, p value.Point, limit int) ([]entity.Listing, error) {
	if limit <= 0 {
		return nil, domain.Errorf(errcodes.InvalidLimit, "limit must be positive, got %d", limit)
	}

	events, err := c.nearestEvents(ctx, p, limit)
	if err != nil {
		return nil, err
	}

	searchesTotal.Inc()

	return lo.Map(events, func(event *entity.Event, _ int) entity.Listing {
		location, _ := event.Location()

		return entity.Listing{
			Event:    event,
			Distance: value.ManhattanDistance(p, location),
			Cheapest: event.CheapestTicket(),
		}
	}), nil
}

func (c *Catalog) nearestEvents(ctx context.Context, p value.Point, limit int) ([]*entity.Event, error) {
	// Placement takes the write lock, so a result computed here cannot be
	// cached after the flush that should have discarded it.
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := fmt.Sprintf("%d:%d:%d", p.X, p.Y, limit)

	if c.searchCache != nil {
		if cached, found := c.searchCache.Get(key); found {
			searchCacheHitsTotal.Inc()
			return cached.([]*entity.Event), nil //nolint:forcetypeassert
		}
	}

	events, err := c.grid.NearestEvents(p, limit)
	if err != nil {
		return nil, fmt.Errorf("grid.NearestEvents: %w", err)
	}

	if c.searchCache != nil {
		c.searchCache.Set(key, events, cache.DefaultExpiration)
	}

	logger(ctx).Debug("nearest events searched",
		logx.Stringer(logx.FieldLocation, p),
		slog.Int("limit", limit),
		slog.Int("found", len(events)),
	)

	return events, nil
}

// Buy sells the ticket to the caller identified by the context user id.
func (c *Catalog) Buy(ctx context.Context, ticketID int64) (entity.Sale, error) {
	c.mu.RLock()
	ticket, ok := c.tickets[ticketID]
	var event *entity.Event
	if ok {
		event = c.events[ticket.EventID()]
	}
	c.mu.RUnlock()

	if !ok {
		return entity.Sale{}, ticketNotFound(ticketID)
	}

	if _, err := event.SellTicket(ticketID); err != nil {
		if domain.HasCode(err, errcodes.TicketAlreadySold) {
			purchaseConflictsTotal.Inc()
		}
		return entity.Sale{}, fmt.Errorf("event.SellTicket: %w", err)
	}

	sale := entity.Sale{
		TicketID: ticket.ID(),
		EventID:  event.ID(),
		Price:    ticket.Price(),
		Buyer:    contextx.UserIDOrEmpty(ctx).String(),
		SoldAt:   c.clock.Now(),
	}

	ticketsSoldTotal.Inc()

	logger(ctx).Info("ticket sold",
		logx.TicketID(sale.TicketID),
		logx.EventID(sale.EventID),
		slog.String(logx.FieldPrice, value.FormatPrice(sale.Price)),
		slog.String(logx.FieldUserID, sale.Buyer),
	)

	c.publish(ctx, sale)

	return sale, nil
}

func (c *Catalog) publish(ctx context.Context, sale entity.Sale) {
	if c.sales == nil {
		return
	}

	select {
	case c.sales <- sale:
	default:
		salesDroppedTotal.Inc()
		logger(ctx).Warn("sale feed is full, notification dropped", logx.TicketID(sale.TicketID))
	}
}

func (c *Catalog) Event(_ context.Context, id int64) (*entity.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	event, ok := c.events[id]
	if !ok {
		return nil, eventNotFound(id)
	}
	return event, nil
}

func (c *Catalog) Ticket(_ context.Context, id int64) (*entity.Ticket, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ticket, ok := c.tickets[id]
	if !ok {
		return nil, ticketNotFound(id)
	}
	return ticket, nil
}

// Events returns every registered event in creation order.
func (c *Catalog) Events(_ context.Context) []*entity.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*entity.Event, len(c.eventOrder))
	copy(result, c.eventOrder)
	return result
}

func (c *Catalog) Render(_ context.Context) string {
	return c.grid.Render()
}

func (c *Catalog) Stats(ctx context.Context) Stats {
	events := c.Events(ctx)

	stats := Stats{Events: len(events)}

	for _, event := range events {
		tickets := event.Tickets()
		unsold := lo.CountBy(tickets, func(t *entity.Ticket) bool { return !t.IsSold() })

		stats.Tickets += len(tickets)
		stats.UnsoldTickets += unsold

		if _, placed := event.Location(); placed {
			stats.PlacedEvents++
			if len(tickets) > 0 && unsold == 0 {
				stats.SoldOut++
			}
		}
	}

	return stats
}

func eventNotFound(id int64) error {
	return domain.Errorf(errcodes.EventNotFound, "event %d not found", id)
}

func ticketNotFound(id int64) error {
	return domain.Errorf(errcodes.TicketNotFound, "ticket %d not found", id)
}
