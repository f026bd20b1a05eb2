package usecase

import (
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
)

// CardView is the display-safe projection of a card. The full number never appears here.
type CardView struct {
	ID           uint64
	MaskedNumber string
	OwnerID      uint64
	OwnerName    string
	Currency     string
	ExpiryDate   time.Time
	Status       entity.CardStatus
	Active       bool
	Expired      bool
	Balance      string // Formatted with 2 decimal places
}

// TransactionView is the display-safe projection of a transaction
type TransactionView struct {
	ID             uint64
	Amount         string
	FromCardID     uint64
	FromCardMasked string
	ToCardID       uint64
	ToCardMasked   string
	Description    string
	Status         entity.TransactionStatus
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

// UserView is a user without credentials
type UserView struct {
	ID        uint64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      entity.Role
	CreatedAt time.Time
}

// NewUserView maps a user to its view
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
