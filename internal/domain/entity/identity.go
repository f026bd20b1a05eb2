package entity

// Identity is the authenticated caller attached to a request
type Identity struct {
	UserID      uint64
	Username    string
	Role        Role
	Authorities []string
}

// NewIdentity builds an identity from a loaded user
func NewIdentity(user *User) *Identity {
	return &Identity{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Authorities: user.Authorities(),
	}
}

// HasAuthority reports whether the identity carries the authority for role
func (i *Identity) HasAuthority(role Role) bool {
	if i == nil {
		return false
	}
	want := role.Authority()
	for _, a := range i.Authorities {
		if a == want {
			return true
		}
	}
	return false
}

// IsAdmin is a shorthand for HasAuthority(RoleAdmin)
func (i *Identity) IsAdmin() bool {
	return i.HasAuthority(RoleAdmin)
}
