package server

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"event_finder/pkg/errcodes"
)

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:    http.StatusBadRequest,
	errcodes.InvalidCoordinates: http.StatusBadRequest,
	errcodes.InvalidLimit:       http.StatusBadRequest,
	errcodes.InvalidPrice:       http.StatusBadRequest,
	errcodes.InvalidEventID:     http.StatusBadRequest,
	errcodes.InvalidTicketID:    http.StatusBadRequest,

	errcodes.NotFound:       http.StatusNotFound,
	errcodes.EventNotFound:  http.StatusNotFound,
	errcodes.TicketNotFound: http.StatusNotFound,

	errcodes.CellOccupied:       http.StatusConflict,
	errcodes.EventAlreadyPlaced: http.StatusConflict,
	errcodes.DuplicateTicket:    http.StatusConflict,
	errcodes.TicketAlreadySold:  http.StatusConflict,

	errcodes.OutOfBounds: http.StatusUnprocessableEntity,
}

func statusOf(code failure.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
