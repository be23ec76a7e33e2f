package memory

import (
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
)

// Идентификаторы совпадают с миграцией seed_rooms для PostgreSQL.
const (
	LuxurySuiteID  = "7c9e6679-7425-40de-944b-e07fc1f90ae1"
	DeluxeRoomID   = "7c9e6679-7425-40de-944b-e07fc1f90ae2"
	PremiumRoomID  = "7c9e6679-7425-40de-944b-e07fc1f90ae3"
	StandardRoomID = "7c9e6679-7425-40de-944b-e07fc1f90ae4"
)

func price(v int64) *int64 { return &v }

func DefaultRooms(now time.Time) []*domain.Room {
	return []*domain.Room{
		{
			ID:            LuxurySuiteID,
			Name:          "Luxury Suite",
			Description:   "Spacious suite with panoramic views, a separate living area and butler service.",
			PricePerNight: 450000,
			OriginalPrice: price(520000),
			MaxGuests:     3,
			SizeLabel:     "65 m²",
			Amenities:     []string{"King Bed", "Living Area", "City View", "Minibar", "Jacuzzi", "Butler Service"},
			Rating:        4.9,
			ReviewCount:   124,
			Available:     true,
			RoomType:      domain.RoomTypeSuite,
			Featured:      true,
			Category:      "suite",
			Beds:          "1 King Bed, 1 Queen Bed",
			ImageURL:      "https://images.unsplash.com/photo-1595576508898-0ad5c879a061?w=800&h=600&fit=crop",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            DeluxeRoomID,
			Name:          "Deluxe Room",
			Description:   "Elegantly appointed room with a work desk and garden views.",
			PricePerNight: 280000,
			OriginalPrice: price(320000),
			MaxGuests:     2,
			SizeLabel:     "35 m²",
			Amenities:     []string{"Queen Bed", "Work Desk", "Garden View", "Coffee Maker", "Mini Fridge"},
			Rating:        4.7,
			ReviewCount:   89,
			Available:     true,
			RoomType:      domain.RoomTypeDeluxe,
			Category:      "deluxe",
			Beds:          "1 King Bed",
			ImageURL:      "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&h=600&fit=crop",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            PremiumRoomID,
			Name:          "Premium Room",
			Description:   "Contemporary room with a private balcony and mountain views.",
			PricePerNight: 320000,
			OriginalPrice: price(380000),
			MaxGuests:     2,
			SizeLabel:     "40 m²",
			Amenities:     []string{"King Bed", "Balcony", "Mountain View", "Tea Service", "Bathrobes"},
			Rating:        4.8,
			ReviewCount:   67,
			Available:     true,
			RoomType:      domain.RoomTypePremium,
			Category:      "deluxe",
			Beds:          "1 King Bed, 1 Sofa Bed",
			ImageURL:      "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&h=600&fit=crop",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            StandardRoomID,
			Name:          "Standard Room",
			Description:   "Comfortable and well-appointed room for short city stays.",
			PricePerNight: 180000,
			OriginalPrice: price(220000),
			MaxGuests:     2,
			SizeLabel:     "25 m²",
			Amenities:     []string{"Double Bed", "City View", "WiFi", "Air Conditioning"},
			Rating:        4.5,
			ReviewCount:   156,
			Available:     true,
			RoomType:      domain.RoomTypeStandard,
			Category:      "standard",
			Beds:          "2 Queen Beds",
			ImageURL:      "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800&h=600&fit=crop",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// SampleBookings - демонстрационные брони относительно сегодняшнего дня.
func SampleBookings(now time.Time) []*domain.Booking {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := func(n int) time.Time { return today.AddDate(0, 0, n) }

	return []*domain.Booking{
		{
			ID:               "0d6a1f8e-3b52-4c1a-9f0e-5b7c2d4e6a01",
			RoomID:           LuxurySuiteID,
			ConfirmationCode: "JD123XYZ",
			CheckIn:          days(-5),
			CheckOut:         days(-2),
			Guests: []domain.Guest{
				{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: "1234567890", IsMainGuest: true},
			},
			AdultCount:    2,
			TotalPrice:    1350000,
			Status:        domain.BookingStatusCompleted,
			PaymentStatus: domain.PaymentStatusPaid,
			CreatedAt:     days(-10),
			UpdatedAt:     days(-2),
		},
		{
			ID:               "0d6a1f8e-3b52-4c1a-9f0e-5b7c2d4e6a02",
			RoomID:           DeluxeRoomID,
			ConfirmationCode: "JS456ABC",
			CheckIn:          days(0),
			CheckOut:         days(3),
			Guests: []domain.Guest{
				{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: "0987654321", IsMainGuest: true},
			},
			AdultCount:    1,
			ChildrenCount: 1,
			TotalPrice:    840000,
			Status:        domain.BookingStatusConfirmed,
			PaymentStatus: domain.PaymentStatusPaid,
			CreatedAt:     days(-1),
			UpdatedAt:     days(-1),
		},
		{
			ID:               "0d6a1f8e-3b52-4c1a-9f0e-5b7c2d4e6a03",
			RoomID:           PremiumRoomID,
			ConfirmationCode: "PJ789DEF",
			CheckIn:          days(2),
			CheckOut:         days(5),
			Guests: []domain.Guest{
				{FirstName: "Peter", LastName: "Jones", Email: "peter.jones@example.com", Phone: "1122334455", IsMainGuest: true},
			},
			AdultCount:    2,
			TotalPrice:    960000,
			Status:        domain.BookingStatusPending,
			PaymentStatus: domain.PaymentStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// SampleEvents - мероприятия из миграции create_events, даты от сегодняшнего дня.
func SampleEvents(now time.Time) []*domain.Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return []*domain.Event{
		{
			ID:          "3f2b8c1e-5d4a-4e6b-9c7d-1a2b3c4d5e01",
			Title:       "Jazz Night",
			Description: "Enjoy a relaxing evening with live jazz music.",
			Date:        today.AddDate(0, 0, 10),
			Location:    "Hotel Lounge",
			ImageURL:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&h=600&fit=crop",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3f2b8c1e-5d4a-4e6b-9c7d-1a2b3c4d5e02",
			Title:       "Wine Tasting",
			Description: "Explore a selection of local and international wines.",
			Date:        today.AddDate(0, 0, 20),
			Location:    "Rooftop Bar",
			ImageURL:    "https://images.unsplash.com/photo-1547595628-c61a2c4c4c05?w=800&h=600&fit=crop",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
