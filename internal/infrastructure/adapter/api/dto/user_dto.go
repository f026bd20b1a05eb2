package dto

import (
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// UserRequest is the body of PUT /api/admin/user/create
type UserRequest struct {
	Username  string `json:"username" binding:"required,min=5,max=50"`
	Email     string `json:"email" binding:"required,email,min=5,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=255"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
}

// UserUpdateRequest is the body of PATCH /api/admin/user/role-update/:id
type UserUpdateRequest struct {
	Email     string `json:"email" binding:"required,email,min=5,max=255"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Role      string `json:"role" binding:"required,role"`
}

// UserResponse represents a user without credentials
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user to its response
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
