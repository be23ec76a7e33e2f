package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/handler/dto"
	hmocks "github.com/octet-systems/pebbleshotel/internal/handler/mocks"
	"github.com/octet-systems/pebbleshotel/internal/middleware"
	mwmocks "github.com/octet-systems/pebbleshotel/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testServices struct {
	rooms    *hmocks.MockRoomSvc
	bookings *hmocks.MockBookingSvc
	stats    *hmocks.MockStatsSvc
	auth     *hmocks.MockAuthSvc
	events   *hmocks.MockEventSvc
}

func setupRouter(t *testing.T) (testServices, http.Handler) {
	t.Helper()
	s := testServices{
		rooms:    hmocks.NewMockRoomSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		stats:    hmocks.NewMockStatsSvc(t),
		auth:     hmocks.NewMockAuthSvc(t),
		events:   hmocks.NewMockEventSvc(t),
	}

	h := NewHandler(s.rooms, s.bookings, s.stats, s.auth, s.events)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/available", h.AvailableRooms)
		api.GET("/rooms/:id", h.GetRoom)
		api.GET("/rooms/:id/availability", h.RoomAvailability)
		api.GET("/rooms/:id/price", h.RoomPrice)
		api.GET("/rooms/:id/bookings", h.RoomBookings)
		api.POST("/rooms", h.CreateRoom)
		api.PATCH("/rooms/:id", h.UpdateRoom)
		api.PATCH("/rooms/:id/availability", h.SetRoomAvailability)
		api.DELETE("/rooms/:id", h.DeleteRoom)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/code/:code", h.GetBookingByCode)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		api.POST("/admin/login", h.Login)
		api.GET("/admin/stats", h.Stats)
		api.GET("/admin/users", h.ListAdmins)
		api.POST("/admin/users", h.CreateAdmin)
	}

	return s, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:               uuid.New().String(),
		RoomID:           uuid.New().String(),
		ConfirmationCode: "AB12CD34",
		CheckIn:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		Guests: []domain.Guest{{
			FirstName: "Jane", LastName: "Smith", Email: "jane@example.com", Phone: "1", IsMainGuest: true,
		}},
		AdultCount:    2,
		TotalPrice:    840,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
}

// --- Rooms ---

func TestHandler_AvailableRooms_Success(t *testing.T) {
	s, r := setupRouter(t)

	ci := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	co := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	s.rooms.EXPECT().AvailableRooms(mock.Anything, ci, co, 2).Return([]*domain.Room{
		{ID: "r1", Name: "Deluxe", PricePerNight: 280, MaxGuests: 2, Available: true},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/rooms/available?checkIn=2024-06-05&checkOut=2024-06-08&guests=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Deluxe", resp[0].Name)
	assert.NotNil(t, resp[0].Amenities)
}

func TestHandler_AvailableRooms_GuestsDefaultToOne(t *testing.T) {
	s, r := setupRouter(t)

	s.rooms.EXPECT().AvailableRooms(mock.Anything, mock.Anything, mock.Anything, 1).Return(nil, nil)

	w := doJSON(r, http.MethodGet, "/api/rooms/available?checkIn=2024-06-05&checkOut=2024-06-08", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_AvailableRooms_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing check-in", "checkOut=2024-06-08"},
		{"garbage check-out", "checkIn=2024-06-05&checkOut=tomorrow"},
		{"guests not a number", "checkIn=2024-06-05&checkOut=2024-06-08&guests=two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t)

			w := doJSON(r, http.MethodGet, "/api/rooms/available?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_AvailableRooms_InvalidRange(t *testing.T) {
	s, r := setupRouter(t)

	s.rooms.EXPECT().AvailableRooms(mock.Anything, mock.Anything, mock.Anything, 1).
		Return(nil, fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidDateRange))

	w := doJSON(r, http.MethodGet, "/api/rooms/available?checkIn=2024-07-01&checkOut=2024-07-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RoomPrice(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.rooms.EXPECT().CalculateTotalPrice(mock.Anything, id, mock.Anything, mock.Anything).
		Return(&domain.PriceQuote{RoomID: id, Nights: 3, PricePerNight: 280, TotalPrice: 840}, nil)

	w := doJSON(r, http.MethodGet, "/api/rooms/"+id+"/price?checkIn=2024-06-01&checkOut=2024-06-04", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PriceQuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(840), resp.TotalPrice)
	assert.Equal(t, 3, resp.Nights)
}

func TestHandler_RoomAvailability_NotFound(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.rooms.EXPECT().IsRoomAvailable(mock.Anything, id, mock.Anything, mock.Anything, 1).
		Return(false, domain.ErrRoomNotFound)

	w := doJSON(r, http.MethodGet, "/api/rooms/"+id+"/availability?checkIn=2024-06-01&checkOut=2024-06-04", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRoom_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/rooms/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListRooms_Featured(t *testing.T) {
	s, r := setupRouter(t)

	s.rooms.EXPECT().ListRooms(mock.Anything, mock.MatchedBy(func(f domain.RoomFilter) bool {
		return f.Featured != nil && *f.Featured && f.RoomType == domain.RoomTypeSuite
	})).Return([]*domain.Room{}, nil)

	w := doJSON(r, http.MethodGet, "/api/rooms?featured=true&type=suite", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateRoom_BindingError(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/rooms", ginext.H{"name": "No price"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRoom_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.rooms.EXPECT().CreateRoom(mock.Anything, mock.MatchedBy(func(in domain.CreateRoomInput) bool {
		return in.SizeLabel == "32 sqm" && in.RoomType == domain.RoomTypeDeluxe
	})).Return(&domain.Room{ID: "r1", Name: "Deluxe", SizeLabel: "32 sqm"}, nil)

	w := doJSON(r, http.MethodPost, "/api/rooms", dto.CreateRoomRequest{
		Name: "Deluxe", PricePerNight: 280, MaxGuests: 2, Size: "32 sqm", RoomType: "deluxe",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "32 sqm", resp.Size)
}

func TestHandler_DeleteRoom_HasBookings(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.rooms.EXPECT().DeleteRoom(mock.Anything, id).Return(fmt.Errorf("delete room: %w", domain.ErrRoomHasBookings))

	w := doJSON(r, http.MethodDelete, "/api/rooms/"+id, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteRoom_Success(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.rooms.EXPECT().DeleteRoom(mock.Anything, id).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/rooms/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_SetRoomAvailability(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.rooms.EXPECT().SetAvailability(mock.Anything, id, false).Return(nil)

	w := doJSON(r, http.MethodPatch, "/api/rooms/"+id+"/availability", ginext.H{"available": false})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetRoomAvailability_MissingField(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/rooms/"+uuid.New().String()+"/availability", ginext.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()

	s.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.RoomID == b.RoomID &&
			in.CheckIn.Equal(b.CheckIn) &&
			len(in.Guests) == 1 &&
			in.Guests[0].Email == "jane@example.com"
	})).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:   b.RoomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-04T00:00:00Z",
		Guests: []dto.GuestRequest{{
			FirstName: "Jane", LastName: "Smith", Email: "jane@example.com", Phone: "1",
		}},
		AdultCount: 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AB12CD34", resp.ConfirmationCode)
	assert.Equal(t, int64(840), resp.Booking.TotalPrice)
	assert.Equal(t, 3, resp.Booking.Nights)
}

func TestHandler_CreateBooking_IgnoresClientStatus(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()

	s.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.RoomID == b.RoomID
	})).Return(b, nil).Once()

	w := doJSON(r, http.MethodPost, "/api/bookings", map[string]any{
		"roomId":        b.RoomID,
		"checkIn":       "2024-06-01",
		"checkOut":      "2024-06-04",
		"guests":        []map[string]any{{"firstName": "Jane", "lastName": "Smith", "email": "jane@example.com", "phone": "1"}},
		"adultCount":    2,
		"status":        "confirmed",
		"paymentStatus": "paid",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusPending), resp.Booking.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.Booking.PaymentStatus)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:   uuid.New().String(),
		CheckIn:  "01/06/2024",
		CheckOut: "2024-06-04",
		Guests:   []dto.GuestRequest{{FirstName: "Jane"}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"overlap", fmt.Errorf("reserve room: %w", domain.ErrRoomUnavailable), http.StatusConflict},
		{"unknown room", fmt.Errorf("check room: %w", domain.ErrRoomNotFound), http.StatusNotFound},
		{"bad guest", fmt.Errorf("%w: guest 1: Email failed \"email\" check", domain.ErrValidation), http.StatusBadRequest},
		{"same day", domain.ErrInvalidDateRange, http.StatusBadRequest},
		{"codes exhausted", domain.ErrConfirmationCodeTaken, http.StatusConflict},
		{"storage", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := setupRouter(t)
			s.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
				RoomID:   uuid.New().String(),
				CheckIn:  "2024-06-01",
				CheckOut: "2024-06-04",
				Guests:   []dto.GuestRequest{{FirstName: "Jane"}},
			})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CreateBooking_InternalErrorHidden(t *testing.T) {
	s, r := setupRouter(t)
	s.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("pq: secret detail"))

	w := doJSON(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID: uuid.New().String(), CheckIn: "2024-06-01", CheckOut: "2024-06-04",
		Guests: []dto.GuestRequest{{FirstName: "Jane"}},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestHandler_GetBooking(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()

	s.bookings.EXPECT().GetByID(mock.Anything, b.ID).Return(b, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+b.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, b.ID, resp.ID)
	require.Len(t, resp.Guests, 1)
	assert.True(t, resp.Guests[0].IsMainGuest)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBookingByCode(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()

	s.bookings.EXPECT().GetByConfirmationCode(mock.Anything, "ab12cd34").Return(b, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings/code/ab12cd34", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_Filter(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.Status == domain.BookingStatusConfirmed && f.Search == "smith" && f.From != nil && f.To == nil
	})).Return([]*domain.Booking{sampleBooking()}, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings?status=confirmed&q=smith&from=2024-06-01", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_BadStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/bookings?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_ReactivateCancelled(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(in domain.UpdateBookingInput) bool {
		return in.Status != nil && *in.Status == domain.BookingStatusConfirmed
	})).Return(nil, fmt.Errorf("update booking: %w", domain.ErrBookingCancelled))

	w := doJSON(r, http.MethodPatch, "/api/bookings/"+id, ginext.H{"status": "confirmed"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBooking_RoleScope(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.AdminRole
		body    ginext.H
		code    int
		reaches bool
	}{
		{"manager changes status", domain.AdminRoleManager, ginext.H{"status": "confirmed", "paymentStatus": "paid"}, http.StatusOK, true},
		{"manager edits guests", domain.AdminRoleManager, ginext.H{"adultCount": 1}, http.StatusForbidden, false},
		{"manager edits requests", domain.AdminRoleManager, ginext.H{"specialRequests": "late check-in"}, http.StatusForbidden, false},
		{"admin edits guests", domain.AdminRoleAdmin, ginext.H{"adultCount": 1}, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := hmocks.NewMockBookingSvc(t)
			h := NewHandler(hmocks.NewMockRoomSvc(t), bookings, hmocks.NewMockStatsSvc(t), hmocks.NewMockAuthSvc(t), hmocks.NewMockEventSvc(t))

			parser := mwmocks.NewMockTokenParser(t)
			parser.EXPECT().ParseToken("token").Return(&domain.AdminClaims{AdminID: "a1", Role: tt.role}, nil)

			r := ginext.New("test")
			r.PATCH("/api/bookings/:id", middleware.AdminAuth(parser), h.UpdateBooking)

			id := uuid.New().String()
			if tt.reaches {
				bookings.EXPECT().Update(mock.Anything, id, mock.Anything).Return(sampleBooking(), nil).Once()
			}

			body, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+id, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()
	b.Status = domain.BookingStatusCancelled

	s.bookings.EXPECT().Cancel(mock.Anything, b.ID).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+b.ID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_RoomBookings(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().ListByRoom(mock.Anything, id).Return([]*domain.Booking{sampleBooking()}, nil)

	w := doJSON(r, http.MethodGet, "/api/rooms/"+id+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Admin ---

func TestHandler_Stats(t *testing.T) {
	s, r := setupRouter(t)

	s.stats.EXPECT().Compute(mock.Anything).Return(&domain.AdminStats{
		TotalBookings: 3, TotalRevenue: 1240, OccupancyRate: 25, AverageRating: 4.8, TotalRooms: 4,
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.OccupancyRate)
	assert.Equal(t, int64(1240), resp.TotalRevenue)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	s, r := setupRouter(t)

	s.auth.EXPECT().Login(mock.Anything, "admin@pebbles.example", "wrong").Return(nil, domain.ErrInvalidCredentials)

	w := doJSON(r, http.MethodPost, "/api/admin/login", dto.LoginRequest{Email: "admin@pebbles.example", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.auth.EXPECT().Login(mock.Anything, "admin@pebbles.example", "s3cret-pass").Return(&domain.AdminSession{
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
		Admin:     &domain.AdminUser{ID: "a1", Email: "admin@pebbles.example", Role: domain.AdminRoleAdmin, PasswordHash: "hash"},
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/login", dto.LoginRequest{Email: "admin@pebbles.example", Password: "s3cret-pass"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, "admin", resp.Admin.Role)
}

func TestHandler_CreateAdmin_EmailTaken(t *testing.T) {
	s, r := setupRouter(t)

	s.auth.EXPECT().CreateAdmin(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/admin/users", dto.CreateAdminRequest{
		Email: "a@pebbles.example", Role: "manager", Password: "long-enough",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListAdmins(t *testing.T) {
	s, r := setupRouter(t)

	s.auth.EXPECT().ListAdmins(mock.Anything).Return([]*domain.AdminUser{
		{ID: "a1", Email: "a@pebbles.example", Role: domain.AdminRoleSuperAdmin},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AdminResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestHandler_ListEvents(t *testing.T) {
	s, r := setupRouter(t)

	s.events.EXPECT().ListEvents(mock.Anything, domain.EventFilter{}).Return([]*domain.Event{
		{ID: "e1", Title: "Jazz Night", ImageURL: "jazz.jpg", Date: time.Date(2030, 7, 10, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	w := doJSON(r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "jazz.jpg", resp[0].Image)
	assert.Equal(t, "2030-07-10T00:00:00Z", resp[0].Date)
}

func TestHandler_ListEvents_From(t *testing.T) {
	s, r := setupRouter(t)

	s.events.EXPECT().ListEvents(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.From != nil && f.From.Equal(time.Date(2030, 7, 5, 0, 0, 0, 0, time.UTC))
	})).Return([]*domain.Event{}, nil).Once()

	w := doJSON(r, http.MethodGet, "/api/events?from=2030-07-05", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/events?from=soon", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.events.EXPECT().GetEvent(mock.Anything, id).Return(nil, fmt.Errorf("get event: %w", domain.ErrEventNotFound)).Once()

	w := doJSON(r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateEvent(t *testing.T) {
	tests := []struct {
		name    string
		body    ginext.H
		reaches bool
		code    int
	}{
		{"valid", ginext.H{"title": "Jazz Night", "date": "2030-07-10", "location": "Hotel Lounge"}, true, http.StatusCreated},
		{"missing title", ginext.H{"date": "2030-07-10"}, false, http.StatusBadRequest},
		{"bad date", ginext.H{"title": "Jazz Night", "date": "10.07.2030"}, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := setupRouter(t)

			if tt.reaches {
				s.events.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
					return in.Title == "Jazz Night" && in.Date.Equal(time.Date(2030, 7, 10, 0, 0, 0, 0, time.UTC))
				})).Return(&domain.Event{ID: "e1", Title: "Jazz Night"}, nil).Once()
			}

			w := doJSON(r, http.MethodPost, "/api/events", tt.body)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_UpdateEvent_Validation(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.events.EXPECT().UpdateEvent(mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("%w: title is required", domain.ErrValidation)).Once()

	w := doJSON(r, http.MethodPatch, "/api/events/"+id, ginext.H{"title": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.events.EXPECT().DeleteEvent(mock.Anything, id).Return(nil).Once()

	w := doJSON(r, http.MethodDelete, "/api/events/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/events/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
