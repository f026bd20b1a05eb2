package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
)

// Role is the access level granted to a user
type Role string

// Role constants
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// authorityPrefix is prepended to a role name to form its authority claim
const authorityPrefix = "ROLE_"

// ParseRole accepts both bare ("ADMIN") and authority ("ROLE_ADMIN") forms
func ParseRole(value string) (Role, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	value = strings.TrimPrefix(value, authorityPrefix)

	switch Role(value) {
	case RoleUser, RoleAdmin:
		return Role(value), nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidRole, value)
	}
}

// Authority returns the claim string carried in tokens for this role
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

// User represents an account holder
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name
	Email        string    // Unique email address
	PasswordHash string    // bcrypt hash, never the plain password
	FirstName    string    // Display first name
	LastName     string    // Display last name
	Role         Role      // Access level
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user; the password must already be hashed
func NewUser(
	username string,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	role Role,
	timeProvider coreport.TimeProvider,
) (*User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", errs.ErrInvalidRequest)
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}

	return &User{
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Role:         role,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// FullName returns "First Last"
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Authorities returns the authority claims for the user's role
func (u *User) Authorities() []string {
	return []string{u.Role.Authority()}
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
