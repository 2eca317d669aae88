package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListTimeslots(c *ginext.Context)
	GetTimeslot(c *ginext.Context)
	CreateTimeslot(c *ginext.Context)
	UpdateTimeslot(c *ginext.Context)
	BookTimeslot(c *ginext.Context)
	CancelTimeslot(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// Guards are the per-route middlewares. Auth runs on every /api route,
// Limit only on the routes that take row locks.
type Guards struct {
	Auth         ginext.HandlerFunc
	RequireUser  ginext.HandlerFunc
	RequireStaff ginext.HandlerFunc
	Limit        ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", g.Auth)
	{
		// Timeslots
		api.GET("/timeslots", h.ListTimeslots)
		api.GET("/timeslots/:id", h.GetTimeslot)
		api.POST("/timeslots", g.RequireStaff, h.CreateTimeslot)
		api.PUT("/timeslots/:id", g.RequireStaff, h.UpdateTimeslot)
		api.POST("/timeslots/:id/cancel", g.RequireStaff, g.Limit, h.CancelTimeslot)

		// Bookings
		api.POST("/timeslots/:id/book", g.RequireUser, g.Limit, h.BookTimeslot)
		api.POST("/bookings/:id/cancel", g.RequireUser, g.Limit, h.CancelBooking)
		api.GET("/me/bookings", g.RequireUser, h.ListMyBookings)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", g.RequireStaff, h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
