package dto

import "github.com/octet-systems/pebbleshotel/internal/domain"

type GuestRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Age         *int   `json:"age"`
	IsMainGuest bool   `json:"isMainGuest"`
}

type CreateBookingRequest struct {
	RoomID          string         `json:"roomId" binding:"required"`
	CheckIn         string         `json:"checkIn" binding:"required"`
	CheckOut        string         `json:"checkOut" binding:"required"`
	Guests          []GuestRequest `json:"guests" binding:"required"`
	AdultCount      int            `json:"adultCount"`
	ChildrenCount   int            `json:"childrenCount"`
	SpecialRequests string         `json:"specialRequests"`
}

type UpdateBookingRequest struct {
	Status          *string        `json:"status"`
	PaymentStatus   *string        `json:"paymentStatus"`
	SpecialRequests *string        `json:"specialRequests"`
	Guests          []GuestRequest `json:"guests"`
	AdultCount      *int           `json:"adultCount"`
	ChildrenCount   *int           `json:"childrenCount"`
}

type CreateRoomRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"pricePerNight" binding:"required,gt=0"`
	OriginalPrice *int64   `json:"originalPrice"`
	MaxGuests     int      `json:"maxGuests" binding:"required,gt=0"`
	Size          string   `json:"size"`
	Amenities     []string `json:"amenities"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Available     *bool    `json:"available"`
	RoomType      string   `json:"roomType" binding:"required"`
	Featured      bool     `json:"featured"`
	Category      string   `json:"category"`
	Beds          string   `json:"beds"`
	Image         string   `json:"image"`
}

type UpdateRoomRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PricePerNight *int64   `json:"pricePerNight"`
	OriginalPrice *int64   `json:"originalPrice"`
	MaxGuests     *int     `json:"maxGuests"`
	Size          *string  `json:"size"`
	Amenities     []string `json:"amenities"`
	Rating        *float64 `json:"rating"`
	ReviewCount   *int     `json:"reviewCount"`
	RoomType      *string  `json:"roomType"`
	Featured      *bool    `json:"featured"`
	Category      *string  `json:"category"`
	Beds          *string  `json:"beds"`
	Image         *string  `json:"image"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func ToGuests(in []GuestRequest) []domain.Guest {
	if in == nil {
		return nil
	}
	guests := make([]domain.Guest, 0, len(in))
	for _, g := range in {
		guests = append(guests, domain.Guest{
			FirstName:   g.FirstName,
			LastName:    g.LastName,
			Email:       g.Email,
			Phone:       g.Phone,
			Age:         g.Age,
			IsMainGuest: g.IsMainGuest,
		})
	}
	return guests
}

func (r CreateRoomRequest) ToInput() domain.CreateRoomInput {
	return domain.CreateRoomInput{
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		OriginalPrice: r.OriginalPrice,
		MaxGuests:     r.MaxGuests,
		SizeLabel:     r.Size,
		Amenities:     r.Amenities,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Available:     r.Available,
		RoomType:      domain.RoomType(r.RoomType),
		Featured:      r.Featured,
		Category:      r.Category,
		Beds:          r.Beds,
		ImageURL:      r.Image,
	}
}

func (r UpdateRoomRequest) ToInput() domain.UpdateRoomInput {
	in := domain.UpdateRoomInput{
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		OriginalPrice: r.OriginalPrice,
		MaxGuests:     r.MaxGuests,
		SizeLabel:     r.Size,
		Amenities:     r.Amenities,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Featured:      r.Featured,
		Category:      r.Category,
		Beds:          r.Beds,
		ImageURL:      r.Image,
	}
	if r.RoomType != nil {
		t := domain.RoomType(*r.RoomType)
		in.RoomType = &t
	}
	return in
}

func (r UpdateBookingRequest) ToInput() domain.UpdateBookingInput {
	in := domain.UpdateBookingInput{
		SpecialRequests: r.SpecialRequests,
		Guests:          ToGuests(r.Guests),
		AdultCount:      r.AdultCount,
		ChildrenCount:   r.ChildrenCount,
	}
	if r.Status != nil {
		s := domain.BookingStatus(*r.Status)
		in.Status = &s
	}
	if r.PaymentStatus != nil {
		p := domain.PaymentStatus(*r.PaymentStatus)
		in.PaymentStatus = &p
	}
	return in
}
