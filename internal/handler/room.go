package handler

import (
	"net/http"
	"strconv"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListRooms(c *ginext.Context) {
	filter := domain.RoomFilter{
		RoomType: domain.RoomType(c.Query("type")),
		Category: c.Query("category"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid featured, expected boolean"})
			return
		}
		filter.Featured = &featured
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) AvailableRooms(c *ginext.Context) {
	checkIn, checkOut, ok := parseStay(c)
	if !ok {
		return
	}
	guests, ok := parseGuests(c)
	if !ok {
		return
	}

	rooms, err := h.roomService.AvailableRooms(c.Request.Context(), checkIn, checkOut, guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

func (h *Handler) RoomAvailability(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	checkIn, checkOut, ok := parseStay(c)
	if !ok {
		return
	}
	guests, ok := parseGuests(c)
	if !ok {
		return
	}

	available, err := h.roomService.IsRoomAvailable(c.Request.Context(), id, checkIn, checkOut, guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{RoomID: id, Available: available})
}

func (h *Handler) RoomPrice(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	checkIn, checkOut, ok := parseStay(c)
	if !ok {
		return
	}

	q, err := h.roomService.CalculateTotalPrice(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceQuoteResponse(q))
}

func (h *Handler) RoomBookings(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByRoom(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) CreateRoom(c *ginext.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) SetRoomAvailability(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.roomService.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"id": id, "available": *req.Available})
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
