package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// CardStatus defines possible status values for a card
type CardStatus string

// CardStatus constants
const (
	CardStatusActive            CardStatus = "ACTIVE"
	CardStatusBlocked           CardStatus = "BLOCKED"
	CardStatusExpired           CardStatus = "EXPIRED"
	CardStatusPendingActivation CardStatus = "PENDING_ACTIVATION"
)

// DefaultCardValidityYears is how long a freshly issued card stays valid
const DefaultCardValidityYears = 3

const maskPrefix = "**** **** **** "

// CardSortFields are the columns a card listing may be sorted by
var CardSortFields = []string{"id", "currency", "expiry_date", "status", "balance"}

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ParseCardStatus validates a textual card status
func ParseCardStatus(value string) (CardStatus, error) {
	status := CardStatus(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case CardStatusActive, CardStatusBlocked, CardStatusExpired, CardStatusPendingActivation:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidCardStatus, value)
	}
}

// NormalizeCurrency upper-cases a currency code and checks it is three letters
func NormalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !currencyPattern.MatchString(currency) {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidCurrency, currency)
	}
	return currency, nil
}

// MaskCardNumber returns the display-safe form of a card number
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return maskPrefix + "****"
	}
	return maskPrefix + number[len(number)-4:]
}

// Card represents a payment card owned by a user
type Card struct {
	ID           uint64          // Unique identifier for the card
	Number       string          // Full card number, never rendered outside the system
	MaskedNumber string          // Display-safe number
	OwnerID      uint64          // ID of the owning user
	Currency     string          // ISO currency code
	ExpiryDate   time.Time       // Date after which the card can't be used
	Active       bool            // Derived from Status
	Status       CardStatus      // Lifecycle status
	balance      decimal.Decimal // Never negative
}

// NewCard issues an ACTIVE card with a zero balance
func NewCard(
	ownerID uint64,
	number string,
	currency string,
	validityYears int,
	timeProvider coreport.TimeProvider,
) (*Card, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("%w: owner is required", errs.ErrInvalidRequest)
	}
	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("%w: card number is required", errs.ErrInvalidRequest)
	}

	normalized, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	if validityYears <= 0 {
		validityYears = DefaultCardValidityYears
	}

	return &Card{
		Number:       number,
		MaskedNumber: MaskCardNumber(number),
		OwnerID:      ownerID,
		Currency:     normalized,
		ExpiryDate:   timeProvider.Now().AddDate(validityYears, 0, 0),
		Active:       true,
		Status:       CardStatusActive,
		balance:      decimal.Zero,
	}, nil
}

// Balance returns the current balance
func (c *Card) Balance() decimal.Decimal {
	return c.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (c *Card) GetBalance() string {
	return FormatAmount(c.balance)
}

// SetBalance sets the balance directly (for repositories restoring state)
func (c *Card) SetBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("%w: balance cannot be negative", errs.ErrConstraintViolation)
	}
	c.balance = balance
	return nil
}

// Deposit adds a positive amount to the balance
func (c *Card) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	c.balance = c.balance.Add(amount)
	return nil
}

// CanWithdraw checks if the balance covers the amount
func (c *Card) CanWithdraw(amount decimal.Decimal) bool {
	return c.balance.GreaterThanOrEqual(amount)
}

// Withdraw subtracts a positive amount from the balance.
// Returns a detailed InsufficientFundsError when the balance does not cover it.
func (c *Card) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !c.CanWithdraw(amount) {
		return errs.NewInsufficientFundsError(
			c.ID,
			FormatAmount(c.balance),
			FormatAmount(amount),
			FormatAmount(amount.Sub(c.balance)),
		)
	}
	c.balance = c.balance.Sub(amount)
	return nil
}

// SetStatus changes the status and keeps the active flag consistent with it
func (c *Card) SetStatus(status CardStatus) error {
	if _, err := ParseCardStatus(string(status)); err != nil {
		return err
	}
	c.Status = status
	c.Active = status == CardStatusActive
	return nil
}

// IsExpired reports whether the expiry date has passed at now
func (c *Card) IsExpired(now time.Time) bool {
	return !c.ExpiryDate.IsZero() && now.After(c.ExpiryDate)
}

// EffectiveStatus is the stored status, except that an ACTIVE card past its
// expiry date reports EXPIRED
func (c *Card) EffectiveStatus(now time.Time) CardStatus {
	if c.Status == CardStatusActive && c.IsExpired(now) {
		return CardStatusExpired
	}
	return c.Status
}

// IsUsable reports whether the card may take part in a transfer at now
func (c *Card) IsUsable(now time.Time) bool {
	return c.EffectiveStatus(now) == CardStatusActive
}
