package domain

import "time"

type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "super_admin"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleManager    AdminRole = "manager"
)

func (r AdminRole) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

type Permission string

const (
	PermissionAll                 Permission = "*"
	PermissionViewDashboard       Permission = "view_dashboard"
	PermissionManageBookings      Permission = "manage_bookings"
	PermissionViewBookings        Permission = "view_bookings"
	PermissionUpdateBookingStatus Permission = "update_booking_status"
	PermissionManageRooms         Permission = "manage_rooms"
	PermissionViewReports         Permission = "view_reports"
)

var rolePermissions = map[AdminRole][]Permission{
	AdminRoleSuperAdmin: {PermissionAll},
	AdminRoleAdmin: {
		PermissionViewDashboard,
		PermissionManageBookings,
		PermissionManageRooms,
		PermissionViewReports,
		PermissionUpdateBookingStatus,
	},
	AdminRoleManager: {
		PermissionViewDashboard,
		PermissionViewBookings,
		PermissionUpdateBookingStatus,
		PermissionViewReports,
	},
}

// HasPermission проверяет право роли; "*" разрешает все.
func HasPermission(role AdminRole, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == PermissionAll || p == perm {
			return true
		}
	}
	return false
}

type AdminUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         AdminRole  `json:"role"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

type CreateAdminInput struct {
	Email    string
	Name     string
	Role     AdminRole
	Password string
}

// AdminClaims - данные, извлеченные из токена администратора.
type AdminClaims struct {
	AdminID string
	Email   string
	Role    AdminRole
}

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
	Admin     *AdminUser
}
