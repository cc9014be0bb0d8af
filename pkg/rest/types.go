// Request and response models of the /v1 event API.
package rest

import "time"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Bounds struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`
}

type Grid struct {
	Bounds   Bounds `json:"bounds"`
	Rendered string `json:"rendered"`
}

type Ticket struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"eventId"`
	Price   string `json:"price"`
	Sold    bool   `json:"sold"`
}

type Event struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Location *Point   `json:"location,omitempty"`
	Cheapest *Ticket  `json:"cheapest,omitempty"`
	Tickets  []Ticket `json:"tickets"`
}

type Listing struct {
	EventID  int64   `json:"eventId"`
	Name     string  `json:"name"`
	Location Point   `json:"location"`
	Distance int     `json:"distance"`
	Cheapest *Ticket `json:"cheapest,omitempty"`
}

type Sale struct {
	TicketID int64     `json:"ticketId"`
	EventID  int64     `json:"eventId"`
	Price    string    `json:"price"`
	Buyer    string    `json:"buyer,omitempty"`
	SoldAt   time.Time `json:"soldAt"`
}

type CreateEventRequest struct {
	X      *int     `json:"x" validate:"required"`
	Y      *int     `json:"y" validate:"required"`
	Prices []string `json:"prices" validate:"max=100,dive,required"`
}

type AddTicketRequest struct {
	Price string `json:"price" validate:"required"`
}

// Error Error model
type Error struct {
	// Code machine-readable error code
	Code ErrorCode `json:"code"`

	// Message human-readable description
	Message string `json:"message"`

	// SupportID trace id of the failed request
	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
