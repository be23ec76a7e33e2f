package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_MainGuest(t *testing.T) {
	b := &Booking{Guests: []Guest{
		{FirstName: "Child"},
		{FirstName: "Jane", IsMainGuest: true},
	}}
	assert.Equal(t, "Jane", b.MainGuest().FirstName)

	b = &Booking{Guests: []Guest{{FirstName: "Only"}}}
	assert.Equal(t, "Only", b.MainGuest().FirstName)

	assert.Nil(t, (&Booking{}).MainGuest())
}

func TestBookingFilter_Match(t *testing.T) {
	b := &Booking{
		RoomID:           "r1",
		ConfirmationCode: "JD123XYZ",
		Status:           BookingStatusConfirmed,
		CheckIn:          date(2024, 6, 1),
		CheckOut:         date(2024, 6, 5),
		Guests:           []Guest{{FirstName: "John", LastName: "Doe", IsMainGuest: true}},
	}

	from := date(2024, 6, 5)
	to := date(2024, 6, 1)
	inside := date(2024, 6, 3)

	tests := []struct {
		name   string
		filter BookingFilter
		want   bool
	}{
		{"empty", BookingFilter{}, true},
		{"status match", BookingFilter{Status: BookingStatusConfirmed}, true},
		{"status mismatch", BookingFilter{Status: BookingStatusPending}, false},
		{"room mismatch", BookingFilter{RoomID: "r2"}, false},
		{"from at checkout", BookingFilter{From: &from}, false},
		{"to at checkin", BookingFilter{To: &to}, false},
		{"window inside", BookingFilter{From: &inside, To: &from}, true},
		{"search code", BookingFilter{Search: "jd123"}, true},
		{"search last name", BookingFilter{Search: "DOE"}, true},
		{"search miss", BookingFilter{Search: "smith"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(b))
		})
	}
}

func TestBooking_Clone_DoesNotShareGuests(t *testing.T) {
	age := 30
	b := &Booking{Guests: []Guest{{FirstName: "A", Age: &age}}}

	c := b.Clone()
	c.Guests[0].FirstName = "B"
	*c.Guests[0].Age = 31

	assert.Equal(t, "A", b.Guests[0].FirstName)
	assert.Equal(t, 30, *b.Guests[0].Age)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(AdminRoleSuperAdmin, PermissionManageRooms))
	assert.True(t, HasPermission(AdminRoleAdmin, PermissionManageRooms))
	assert.False(t, HasPermission(AdminRoleAdmin, PermissionViewBookings))
	assert.True(t, HasPermission(AdminRoleManager, PermissionViewBookings))
	assert.False(t, HasPermission(AdminRoleManager, PermissionManageRooms))
	assert.False(t, HasPermission(AdminRole("guest"), PermissionViewDashboard))
}
