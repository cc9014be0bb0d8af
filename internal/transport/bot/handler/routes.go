package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"event_finder/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.Use(middleware.Logging)

	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnNearest, th.CommandEqual("nearest"))
	bh.HandleMessage(h.OnEvent, th.CommandEqual("event"))
	bh.HandleMessage(h.OnBuy, th.CommandEqual("buy"))
	bh.HandleMessage(h.OnGrid, th.CommandEqual("grid"))
	bh.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnAddEvent, th.CommandEqual("addevent"))
}
