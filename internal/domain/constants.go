package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, matches the stored booking date
)

// Roles carried in profiles and JWT claims.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Field length limits enforced at validation.
const (
	MaxDriverNameLength  = 120
	MaxDestinationLength = 255
	MaxReasonLength      = 500
)
