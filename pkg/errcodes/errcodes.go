package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Grid
	InvalidBounds      failure.ErrorCode = "InvalidBounds"
	InvalidCoordinates failure.ErrorCode = "InvalidCoordinates"
	OutOfBounds        failure.ErrorCode = "OutOfBounds"
	CellOccupied       failure.ErrorCode = "CellOccupied"
	EventAlreadyPlaced failure.ErrorCode = "EventAlreadyPlaced"
	InvalidLimit       failure.ErrorCode = "InvalidLimit"

	// Events and tickets
	EventNotFound     failure.ErrorCode = "EventNotFound"
	InvalidEventID    failure.ErrorCode = "InvalidEventID"
	TicketNotFound    failure.ErrorCode = "TicketNotFound"
	InvalidTicketID   failure.ErrorCode = "InvalidTicketID"
	DuplicateTicket   failure.ErrorCode = "DuplicateTicket"
	TicketAlreadySold failure.ErrorCode = "TicketAlreadySold"
	InvalidPrice      failure.ErrorCode = "InvalidPrice"
	InvalidSeedCount  failure.ErrorCode = "InvalidSeedCount"
)
