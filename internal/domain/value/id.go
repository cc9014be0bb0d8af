package value

import (
	"strconv"
	"strings"

	"event_finder/internal/domain"
	"event_finder/pkg/errcodes"
)

func ParseEventID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 0 {
		return 0, domain.Errorf(errcodes.InvalidEventID, "invalid event id %q", s)
	}

	return id, nil
}

func ParseTicketID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 0 {
		return 0, domain.Errorf(errcodes.InvalidTicketID, "invalid ticket id %q", s)
	}

	return id, nil
}
