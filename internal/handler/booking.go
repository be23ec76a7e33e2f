package handler

import (
	"fmt"
	"net/http"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/handler/dto"
	"github.com/octet-systems/pebbleshotel/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := parseDate("checkIn", req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	checkOut, err := parseDate("checkOut", req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          dto.ToGuests(req.Guests),
		AdultCount:      req.AdultCount,
		ChildrenCount:   req.ChildrenCount,
		SpecialRequests: req.SpecialRequests,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		ConfirmationCode: booking.ConfirmationCode,
		Booking:          dto.ToBookingResponse(booking),
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBookingByCode(c *ginext.Context) {
	booking, err := h.bookingService.GetByConfirmationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.BookingFilter{
		Status: domain.BookingStatus(c.Query("status")),
		RoomID: c.Query("roomId"),
		Search: c.Query("q"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
		return
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseDate("from", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDate("to", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		filter.To = &to
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// с правом update_booking_status меняются только статусы
	input := req.ToInput()
	if claims, ok := middleware.AdminFromContext(c); ok && !input.StatusOnly() &&
		!domain.HasPermission(claims.Role, domain.PermissionManageBookings) {
		h.handleError(c, fmt.Errorf("%w: role %s may change only status and payment status",
			domain.ErrForbidden, claims.Role))
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
