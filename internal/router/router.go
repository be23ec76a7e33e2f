package router

import (
	"fmt"
	"net/http"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListRooms(c *ginext.Context)
	GetRoom(c *ginext.Context)
	AvailableRooms(c *ginext.Context)
	RoomAvailability(c *ginext.Context)
	RoomPrice(c *ginext.Context)
	RoomBookings(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	SetRoomAvailability(c *ginext.Context)
	DeleteRoom(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetBookingByCode(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)

	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	Login(c *ginext.Context)
	Stats(c *ginext.Context)
	ListAdmins(c *ginext.Context)
	CreateAdmin(c *ginext.Context)
}

// Guards - middleware, которые роутер навешивает на отдельные маршруты.
type Guards struct {
	AdminAuth    ginext.HandlerFunc
	BookingLimit ginext.HandlerFunc
}

// InitRouter собирает маршруты API. X-Forwarded-For учитывается только от
// адресов из trustedProxies, иначе ключом лимита служит адрес соединения.
func InitRouter(mode string, trustedProxies []string, h Handler, g Guards, mw ...ginext.HandlerFunc) (*ginext.Engine, error) {
	router := ginext.New(mode)
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	router.Use(mw...)

	can := func(perms ...domain.Permission) []ginext.HandlerFunc {
		return []ginext.HandlerFunc{g.AdminAuth, middleware.RequirePermission(perms...)}
	}
	with := func(guards []ginext.HandlerFunc, handler ginext.HandlerFunc) []ginext.HandlerFunc {
		return append(guards, handler)
	}

	api := router.Group("/api")
	{
		// Rooms
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/available", h.AvailableRooms)
		api.GET("/rooms/:id", h.GetRoom)
		api.GET("/rooms/:id/availability", h.RoomAvailability)
		api.GET("/rooms/:id/price", h.RoomPrice)
		api.GET("/rooms/:id/bookings", with(can(domain.PermissionViewBookings, domain.PermissionManageBookings), h.RoomBookings)...)
		api.POST("/rooms", with(can(domain.PermissionManageRooms), h.CreateRoom)...)
		api.PATCH("/rooms/:id", with(can(domain.PermissionManageRooms), h.UpdateRoom)...)
		api.PATCH("/rooms/:id/availability", with(can(domain.PermissionManageRooms), h.SetRoomAvailability)...)
		api.DELETE("/rooms/:id", with(can(domain.PermissionManageRooms), h.DeleteRoom)...)

		// Bookings
		api.POST("/bookings", g.BookingLimit, h.CreateBooking)
		api.GET("/bookings", with(can(domain.PermissionViewBookings, domain.PermissionManageBookings), h.ListBookings)...)
		api.GET("/bookings/code/:code", h.GetBookingByCode)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", with(can(domain.PermissionUpdateBookingStatus, domain.PermissionManageBookings), h.UpdateBooking)...)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", with(can(domain.PermissionManageRooms), h.CreateEvent)...)
		api.PATCH("/events/:id", with(can(domain.PermissionManageRooms), h.UpdateEvent)...)
		api.DELETE("/events/:id", with(can(domain.PermissionManageRooms), h.DeleteEvent)...)

		// Admin
		api.POST("/admin/login", h.Login)
		api.GET("/admin/stats", with(can(domain.PermissionViewDashboard), h.Stats)...)
		api.GET("/admin/users", with(can(domain.PermissionAll), h.ListAdmins)...)
		api.POST("/admin/users", with(can(domain.PermissionAll), h.CreateAdmin)...)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router, nil
}
