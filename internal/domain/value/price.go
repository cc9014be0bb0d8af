package value

import (
	"strings"

	"github.com/shopspring/decimal"

	"event_finder/internal/domain"
	"event_finder/pkg/errcodes"
)

// NoTickets is shown in place of a price when an event has nothing for sale.
const NoTickets = "No Tickets"

// ParsePrice parses a dollar amount such as "10", "10.5" or "$10.50".
func ParsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Decimal{}, domain.WrapError(err, errcodes.InvalidPrice, "invalid price")
	}

	return price, nil
}

// FormatPrice renders a price in US dollars with two decimals.
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}
