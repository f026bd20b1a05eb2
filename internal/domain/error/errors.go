package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeSelfTransfer         = 4003
	CodeCardsNotActive       = 4004
	CodeConstraintViolation  = 4005
	CodeInvalidRequest       = 4006
	CodeMalformedAuthHeader  = 4007
	CodeInvalidCardStatus    = 4008
	CodeInvalidRole          = 4009
	CodeInvalidCurrency      = 4010
	CodeTokenExpired         = 4011
	CodeTokenMalformed       = 4012
	CodeTokenNotFound        = 4013
	CodeTokenSignature       = 4014
	CodeTokenUnsupported     = 4015
	CodeTokenEmpty           = 4016
	CodeTokenAlreadyExists   = 4017
	CodeInvalidCredentials   = 4018
	CodeUnauthenticated      = 4019
	CodeAccessDenied         = 4030
	CodeUserNotFound         = 4040
	CodeCardNotFound         = 4041
	CodeSourceCardNotFound   = 4042
	CodeDestCardNotFound     = 4043
	CodeTransactionNotFound  = 4044
	CodeDuplicateUser        = 4090
	CodeDuplicateCard        = 4091
	CodeConcurrentUpdate     = 4092
	CodeTransactionFinalized = 4093
	CodeCardHasTransactions  = 4094

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeTransferFailed     = 5001
	CodeDatabaseConnection = 5002
)

// Not-found errors
var (
	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("User not found")

	// ErrCardNotFound is returned when the requested card doesn't exist
	ErrCardNotFound = errors.New("Card not found")

	// ErrSourceCardNotFound is returned when the debited card of a transfer doesn't exist
	ErrSourceCardNotFound = errors.New("Source account not found")

	// ErrDestinationCardNotFound is returned when the credited card of a transfer doesn't exist
	ErrDestinationCardNotFound = errors.New("Destination account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("Transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// Validation errors
var (
	// ErrSelfTransferNotAllowed is returned when source and destination cards are the same
	ErrSelfTransferNotAllowed = errors.New("Cannot transfer to the same card")

	// ErrInsufficientFunds is returned when a card balance does not cover the requested amount
	ErrInsufficientFunds = errors.New("Insufficient funds")

	// ErrCardsNotActive is returned when either card of a transfer is not ACTIVE
	ErrCardsNotActive = errors.New("Both cards must be active")

	// ErrInvalidAmount is returned when an amount is not a positive value with at most two decimals
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCardStatus is returned for an unknown card status value
	ErrInvalidCardStatus = errors.New("invalid card status")

	// ErrInvalidRole is returned for an unknown role value
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCurrency is returned when a currency is not a three letter code
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")
)

// Token and authentication errors
var (
	ErrTokenExpired              = errors.New("Token has expired")
	ErrTokenMalformed            = errors.New("Token is malformed")
	ErrTokenNotFound             = errors.New("Token not found")
	ErrTokenSignatureInvalid     = errors.New("Token signature is invalid")
	ErrTokenUnsupportedAlgorithm = errors.New("Token is not supported")
	ErrTokenEmpty                = errors.New("Token is empty")
	ErrTokenAlreadyExists        = errors.New("Token already exists")

	// ErrMalformedAuthHeader is returned when the Authorization header lacks the bearer prefix
	ErrMalformedAuthHeader = errors.New("Invalid token format. Token must start with 'Bearer '")

	// ErrInvalidCredentials is returned when a username/password pair does not match
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// ErrUnauthenticated is returned when a protected operation runs without an identity
	ErrUnauthenticated = errors.New("Full authentication is required to access this resource")

	// ErrAccessDenied is returned when the identity lacks the required role or ownership
	ErrAccessDenied = errors.New("Access denied")
)

// Execution and storage errors
var (
	// ErrTransferFailed hides the underlying cause of a failed balance mutation
	ErrTransferFailed = errors.New("Transfer failed")

	// ErrTransactionFinalized is returned when a terminal transaction is changed again
	ErrTransactionFinalized = errors.New("transaction is already finalized")

	// ErrDuplicateUser is returned when the username or email is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateCard is returned when a card number collides with an existing card
	ErrDuplicateCard = errors.New("card already exists")

	// ErrCardHasTransactions is returned when a card with transaction history is deleted
	ErrCardHasTransactions = errors.New("Card has transaction history and cannot be deleted")

	// ErrConcurrentUpdate is returned when the store aborts because of a lock or serialization conflict
	ErrConcurrentUpdate = errors.New("concurrent update detected")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("An internal server error occurred. Please contact support.")
)

var codes = []struct {
	err  error
	code int
}{
	{ErrInsufficientFunds, CodeInsufficientFunds},
	{ErrInvalidAmount, CodeInvalidAmount},
	{ErrSelfTransferNotAllowed, CodeSelfTransfer},
	{ErrCardsNotActive, CodeCardsNotActive},
	{ErrConstraintViolation, CodeConstraintViolation},
	{ErrInvalidRequest, CodeInvalidRequest},
	{ErrMalformedAuthHeader, CodeMalformedAuthHeader},
	{ErrInvalidCardStatus, CodeInvalidCardStatus},
	{ErrInvalidRole, CodeInvalidRole},
	{ErrInvalidCurrency, CodeInvalidCurrency},
	{ErrTokenExpired, CodeTokenExpired},
	{ErrTokenMalformed, CodeTokenMalformed},
	{ErrTokenNotFound, CodeTokenNotFound},
	{ErrTokenSignatureInvalid, CodeTokenSignature},
	{ErrTokenUnsupportedAlgorithm, CodeTokenUnsupported},
	{ErrTokenEmpty, CodeTokenEmpty},
	{ErrTokenAlreadyExists, CodeTokenAlreadyExists},
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrUnauthenticated, CodeUnauthenticated},
	{ErrAccessDenied, CodeAccessDenied},
	{ErrUserNotFound, CodeUserNotFound},
	{ErrCardNotFound, CodeCardNotFound},
	{ErrSourceCardNotFound, CodeSourceCardNotFound},
	{ErrDestinationCardNotFound, CodeDestCardNotFound},
	{ErrTransactionNotFound, CodeTransactionNotFound},
	{ErrDuplicateUser, CodeDuplicateUser},
	{ErrDuplicateCard, CodeDuplicateCard},
	{ErrConcurrentUpdate, CodeConcurrentUpdate},
	{ErrTransactionFinalized, CodeTransactionFinalized},
	{ErrCardHasTransactions, CodeCardHasTransactions},
	{ErrTransferFailed, CodeTransferFailed},
	{ErrDatabaseConnection, CodeDatabaseConnection},
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternalServer
}

// InsufficientFundsError carries the balance that was available when a debit was refused
type InsufficientFundsError struct {
	CardID    uint64
	Available string
	Requested string
	Deficit   string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on card %d: available %s, requested %s",
		e.CardID, e.Available, e.Requested)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"card_id":    e.CardID,
		"available":  e.Available,
		"requested":  e.Requested,
		"deficit":    e.Deficit,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a detailed insufficient funds error.
// Amounts are passed preformatted so this package stays free of money types.
func NewInsufficientFundsError(cardID uint64, available, requested, deficit string) error {
	return &InsufficientFundsError{
		CardID:    cardID,
		Available: available,
		Requested: requested,
		Deficit:   deficit,
	}
}

// CardsNotActiveError reports the statuses observed on both sides of a refused transfer
type CardsNotActiveError struct {
	FromStatus string
	ToStatus   string
}

// Error implements the error interface
func (e *CardsNotActiveError) Error() string {
	return fmt.Sprintf("cards are not active: source %s, destination %s", e.FromStatus, e.ToStatus)
}

// Is checks if the target error is an ErrCardsNotActive
func (e *CardsNotActiveError) Is(target error) bool {
	return target == ErrCardsNotActive
}

// LogFields returns a map of fields for structured logging
func (e *CardsNotActiveError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "cards_not_active",
		"from_status": e.FromStatus,
		"to_status":   e.ToStatus,
		"error_code":  CodeCardsNotActive,
	}
}

// NewCardsNotActiveError creates a new detailed cards-not-active error
func NewCardsNotActiveError(fromStatus, toStatus string) error {
	return &CardsNotActiveError{
		FromStatus: fromStatus,
		ToStatus:   toStatus,
	}
}

// TransferError keeps the real cause of a failed transfer for logs while
// matching ErrTransferFailed for callers
type TransferError struct {
	TransactionID uint64
	FromCardID    uint64
	ToCardID      uint64
	Amount        string
	Cause         error
}

// Error implements the error interface. The cause is intentionally left out.
func (e *TransferError) Error() string {
	return ErrTransferFailed.Error()
}

// Is checks if the target error is an ErrTransferFailed
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":     "transfer_failed",
		"transaction_id": e.TransactionID,
		"from_card_id":   e.FromCardID,
		"to_card_id":     e.ToCardID,
		"amount":         e.Amount,
		"error_code":     CodeTransferFailed,
	}
	if e.Cause != nil {
		fields["cause"] = e.Cause.Error()
	}
	return fields
}

// NewTransferError creates a transfer failure that wraps an internal cause
func NewTransferError(transactionID, fromCardID, toCardID uint64, amount string, cause error) error {
	return &TransferError{
		TransactionID: transactionID,
		FromCardID:    fromCardID,
		ToCardID:      toCardID,
		Amount:        amount,
		Cause:         cause,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCardNotFound) ||
		errors.Is(err, ErrSourceCardNotFound) ||
		errors.Is(err, ErrDestinationCardNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsTokenError checks if the error means the presented credential is unusable
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenNotFound) ||
		errors.Is(err, ErrTokenSignatureInvalid) ||
		errors.Is(err, ErrTokenUnsupportedAlgorithm) ||
		errors.Is(err, ErrTokenEmpty) ||
		errors.Is(err, ErrTokenAlreadyExists)
}

// IsValidationError checks if the error is a client-side validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSelfTransferNotAllowed) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrCardsNotActive) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCardStatus) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidCurrency) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}
