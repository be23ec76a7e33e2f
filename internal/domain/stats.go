package domain

import (
	"math"
	"time"
)

// AdminStats - сводка для панели администратора.
//
// OccupancyRate считается как доля подтвержденных броней к числу номеров
// и не учитывает даты проживания. Это грубый KPI, а не загрузка номерного
// фонда по ночам.
type AdminStats struct {
	TotalBookings    int       `json:"totalBookings"`
	TotalRevenue     int64     `json:"totalRevenue"`
	OccupancyRate    int       `json:"occupancyRate"`
	AverageRating    float64   `json:"averageRating"`
	NewBookingsToday int       `json:"newBookingsToday"`
	CheckInsToday    int       `json:"checkInsToday"`
	CheckOutsToday   int       `json:"checkOutsToday"`
	UpcomingArrivals int       `json:"upcomingArrivals"`
	TotalRooms       int       `json:"totalRooms"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

// ComputeStats пересчитывает сводку целиком. Границы "сегодня" берутся
// в часовом поясе now.
func ComputeStats(rooms []*Room, bookings []*Booking, now time.Time) AdminStats {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	today := func(t time.Time) bool {
		return !t.Before(todayStart) && t.Before(todayEnd)
	}

	st := AdminStats{
		TotalBookings: len(bookings),
		TotalRooms:    len(rooms),
		GeneratedAt:   now,
	}

	confirmed := 0
	for _, b := range bookings {
		if today(b.CreatedAt) {
			st.NewBookingsToday++
		}
		if b.Status != BookingStatusConfirmed {
			continue
		}
		confirmed++
		st.TotalRevenue += b.TotalPrice
		if today(b.CheckIn) {
			st.CheckInsToday++
		}
		if today(b.CheckOut) {
			st.CheckOutsToday++
		}
		if b.CheckIn.After(now) {
			st.UpcomingArrivals++
		}
	}

	if len(rooms) > 0 {
		st.OccupancyRate = int(math.Round(float64(confirmed) / float64(len(rooms)) * 100))

		var sum float64
		for _, r := range rooms {
			sum += r.Rating
		}
		st.AverageRating = math.Round(sum/float64(len(rooms))*10) / 10
	}

	return st
}
