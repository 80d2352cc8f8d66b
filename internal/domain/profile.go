package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a Profile.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string { return string(r) }

// IsValid returns true if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	}
	return false
}

// Profile is the application-level user record keyed by a unique username.
// It is distinct from the Identity used to authenticate.
type Profile struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	CreatedAt time.Time
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Username constraints.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// reservedUsernames are first path segments owned by the application itself.
var reservedUsernames = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"auth":      {},
	"dashboard": {},
	"generator": {},
	"health":    {},
	"live":      {},
	"ready":     {},
	"signout":   {},
	"static":    {},
}

// NormalizeUsername trims a username and folds ASCII letters to lower case.
// Other runes are left as they are so ValidateUsername rejects them; full
// Unicode folding would map the Kelvin sign to "k".
func NormalizeUsername(username string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, strings.TrimSpace(username))
}

// IsReservedUsername reports whether username collides with an application route.
func IsReservedUsername(username string) bool {
	_, ok := reservedUsernames[NormalizeUsername(username)]
	return ok
}

// ValidateUsername checks an already normalized username and returns a
// FieldError message, or "" when the username is acceptable.
func ValidateUsername(username string) string {
	switch {
	case username == "":
		return "required"
	case len(username) < MinUsernameLength:
		return "must be at least 3 characters"
	case len(username) > MaxUsernameLength:
		return "must be at most 20 characters"
	case !usernamePattern.MatchString(username):
		return "may only contain letters, numbers, underscores and hyphens"
	case IsReservedUsername(username):
		return "is reserved"
	}
	return ""
}
