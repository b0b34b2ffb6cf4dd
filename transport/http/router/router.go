package router

import (
	"hostel/internal/handlers/auth"
	"hostel/internal/handlers/export"
	"hostel/internal/handlers/frontdesk"
	"hostel/internal/handlers/history"
	"hostel/internal/handlers/room"
	"hostel/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Room      room.Handler
	FrontDesk frontdesk.Handler
	History   history.Handler
	Export    export.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.FrontDesk.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
		r.DomainHandlers.Export.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
