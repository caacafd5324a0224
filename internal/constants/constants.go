package constants

// Session cookie and session value keys
const (
	SessionCookieName = "relief_session"

	SessionKeyUserID    = "user_id"
	SessionKeyUserEmail = "user_email"
	SessionKeyUserName  = "user_name"
	SessionKeyUserRole  = "user_role"
)

// ContextKeyPrincipal is the gin context key holding the authenticated principal
const ContextKeyPrincipal = "principal"

// LoginPath is where unauthenticated requests are redirected
const LoginPath = "/account/login"

// MinPasswordLength is the minimum accepted password length at registration
const MinPasswordLength = 8

// Pagination limits
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DashboardRecentIncidents is how many incidents the dashboard shows
const DashboardRecentIncidents = 3

// MaxHoursWorked bounds the hours a volunteer can log on one assignment
const MaxHoursWorked = 999.99
