package handler

const (
	startMessage = `🎟 <b>Event Finder</b>

/nearest <code>x y [limit]</code> closest events and their cheapest tickets
/event <code>id</code> event details
/buy <code>id</code> buy a ticket
/grid events grid
/status inventory summary`

	usageNearest  = "❌ Usage: /nearest <code>x y [limit]</code>"
	usageEvent    = "❌ Usage: /event <code>id</code>"
	usageBuy      = "❌ Usage: /buy <code>id</code>"
	usageAddEvent = "❌ Usage: /addevent <code>x y [price...]</code>"

	msgOutOfBounds = "❌ Coordinates are out of bounds!"
	msgInternal    = "❌ Something went wrong, try again later."
)
