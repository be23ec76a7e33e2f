package repository

// Коды ошибок PostgreSQL, которые транслируются в доменные ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

const (
	bookingsCodeConstraint = "bookings_confirmation_code_key"
	adminEmailConstraint   = "admin_users_email_key"
)
