package dto

import (
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"pricePerNight"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	MaxGuests     int      `json:"maxGuests"`
	Size          string   `json:"size"`
	Amenities     []string `json:"amenities"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Available     bool     `json:"available"`
	RoomType      string   `json:"roomType"`
	Featured      bool     `json:"featured"`
	Category      string   `json:"category"`
	Beds          string   `json:"beds"`
	Image         string   `json:"image"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type GuestResponse struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Age         *int   `json:"age,omitempty"`
	IsMainGuest bool   `json:"isMainGuest"`
}

type BookingResponse struct {
	ID               string          `json:"id"`
	RoomID           string          `json:"roomId"`
	ConfirmationCode string          `json:"confirmationCode"`
	CheckIn          string          `json:"checkIn"`
	CheckOut         string          `json:"checkOut"`
	Nights           int             `json:"nights"`
	Guests           []GuestResponse `json:"guests"`
	AdultCount       int             `json:"adultCount"`
	ChildrenCount    int             `json:"childrenCount"`
	SpecialRequests  string          `json:"specialRequests,omitempty"`
	TotalPrice       int64           `json:"totalPrice"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

type CreateBookingResponse struct {
	ConfirmationCode string          `json:"confirmationCode"`
	Booking          BookingResponse `json:"booking"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"roomId"`
	Available bool   `json:"available"`
}

type PriceQuoteResponse struct {
	RoomID        string `json:"roomId"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	TotalPrice    int64  `json:"totalPrice"`
}

type StatsResponse struct {
	TotalBookings    int     `json:"totalBookings"`
	TotalRevenue     int64   `json:"totalRevenue"`
	OccupancyRate    int     `json:"occupancyRate"`
	AverageRating    float64 `json:"averageRating"`
	NewBookingsToday int     `json:"newBookingsToday"`
	CheckInsToday    int     `json:"checkInsToday"`
	CheckOutsToday   int     `json:"checkOutsToday"`
	UpcomingArrivals int     `json:"upcomingArrivals"`
	TotalRooms       int     `json:"totalRooms"`
	GeneratedAt      string  `json:"generatedAt"`
}

type AdminResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	CreatedAt   string  `json:"createdAt"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		OriginalPrice: r.OriginalPrice,
		MaxGuests:     r.MaxGuests,
		Size:          r.SizeLabel,
		Amenities:     amenities,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Available:     r.Available,
		RoomType:      string(r.RoomType),
		Featured:      r.Featured,
		Category:      r.Category,
		Beds:          r.Beds,
		Image:         r.ImageURL,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponses(rooms []*domain.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, ToRoomResponse(r))
	}
	return resp
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(time.RFC3339),
		Location:    e.Location,
		Image:       e.ImageURL,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	guests := make([]GuestResponse, 0, len(b.Guests))
	for _, g := range b.Guests {
		guests = append(guests, GuestResponse{
			FirstName:   g.FirstName,
			LastName:    g.LastName,
			Email:       g.Email,
			Phone:       g.Phone,
			Age:         g.Age,
			IsMainGuest: g.IsMainGuest,
		})
	}

	return BookingResponse{
		ID:               b.ID,
		RoomID:           b.RoomID,
		ConfirmationCode: b.ConfirmationCode,
		CheckIn:          b.CheckIn.Format(time.RFC3339),
		CheckOut:         b.CheckOut.Format(time.RFC3339),
		Nights:           b.Range().Nights(),
		Guests:           guests,
		AdultCount:       b.AdultCount,
		ChildrenCount:    b.ChildrenCount,
		SpecialRequests:  b.SpecialRequests,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToPriceQuoteResponse(q *domain.PriceQuote) PriceQuoteResponse {
	return PriceQuoteResponse{
		RoomID:        q.RoomID,
		Nights:        q.Nights,
		PricePerNight: q.PricePerNight,
		TotalPrice:    q.TotalPrice,
	}
}

func ToStatsResponse(s *domain.AdminStats) StatsResponse {
	return StatsResponse{
		TotalBookings:    s.TotalBookings,
		TotalRevenue:     s.TotalRevenue,
		OccupancyRate:    s.OccupancyRate,
		AverageRating:    s.AverageRating,
		NewBookingsToday: s.NewBookingsToday,
		CheckInsToday:    s.CheckInsToday,
		CheckOutsToday:   s.CheckOutsToday,
		UpcomingArrivals: s.UpcomingArrivals,
		TotalRooms:       s.TotalRooms,
		GeneratedAt:      s.GeneratedAt.Format(time.RFC3339),
	}
}

// ToAdminResponse не включает хеш пароля.
func ToAdminResponse(u *domain.AdminUser) AdminResponse {
	resp := AdminResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLoginAt != nil {
		at := u.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &at
	}
	return resp
}

func ToLoginResponse(s *domain.AdminSession) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		Admin:     ToAdminResponse(s.Admin),
	}
}
