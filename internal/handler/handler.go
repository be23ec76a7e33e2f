package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RoomSvc interface {
	CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, id string, input domain.UpdateRoomInput) (*domain.Room, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	DeleteRoom(ctx context.Context, id string) error
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	AvailableRooms(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]*domain.Room, error)
	IsRoomAvailable(ctx context.Context, id string, checkIn, checkOut time.Time, guests int) (bool, error)
	CalculateTotalPrice(ctx context.Context, id string, checkIn, checkOut time.Time) (*domain.PriceQuote, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
}

type StatsSvc interface {
	Compute(ctx context.Context) (*domain.AdminStats, error)
}

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (*domain.AdminSession, error)
	CreateAdmin(ctx context.Context, input domain.CreateAdminInput) (*domain.AdminUser, error)
	ListAdmins(ctx context.Context) ([]*domain.AdminUser, error)
}

type Handler struct {
	roomService    RoomSvc
	bookingService BookingSvc
	statsService   StatsSvc
	authService    AuthSvc
	eventService   EventSvc
}

func NewHandler(
	roomService RoomSvc,
	bookingService BookingSvc,
	statsService StatsSvc,
	authService AuthSvc,
	eventService EventSvc,
) *Handler {
	return &Handler{
		roomService:    roomService,
		bookingService: bookingService,
		statsService:   statsService,
		authService:    authService,
		eventService:   eventService,
	}
}

const dateLayout = "2006-01-02"

// parseDate принимает как календарную дату (полночь UTC), так и RFC3339.
func parseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format, expected YYYY-MM-DD or RFC3339", field)
	}
	return t, nil
}

func parseStay(c *ginext.Context) (time.Time, time.Time, bool) {
	checkIn, err := parseDate("checkIn", c.Query("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := parseDate("checkOut", c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func parseGuests(c *ginext.Context) (int, bool) {
	raw := c.Query("guests")
	if raw == "" {
		return 1, true
	}
	guests, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests, expected integer"})
		return 0, false
	}
	return guests, true
}

func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrRoomHasBookings),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrConfirmationCodeTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
