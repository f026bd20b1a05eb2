package httperr

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/validation"
	applogger "github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// Response titles
const (
	TitleInsufficientFunds = "Insufficient Funds"
	TitleCardStatus        = "Card Status Validation Failed"
	TitleTransferFailed    = "Transfer Operation Failed"
	TitleInvalidToken      = "Invalid Token"
	TitleTokenFormat       = "Invalid Token Format"
	TitleUnauthorized      = "Unauthorized"
	TitleForbidden         = "Access Denied"
	TitleNotFound          = "Not Found"
	TitleConflict          = "Conflict"
	TitleValidation        = "Validation Failed"
	TitleInternal          = "Internal Server Error"
)

type logFielder interface {
	LogFields() map[string]any
}

// Renderer writes domain errors as dto.ErrorResponse bodies
type Renderer struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewRenderer creates a new error renderer
func NewRenderer(logger coreport.Logger, timeProvider coreport.TimeProvider) *Renderer {
	return &Renderer{logger: logger, timeProvider: timeProvider}
}

// StatusFor maps an error to its HTTP status and response title
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusConflict, TitleInsufficientFunds
	case errors.Is(err, errs.ErrCardsNotActive):
		return http.StatusBadRequest, TitleCardStatus
	case errors.Is(err, errs.ErrTransferFailed):
		return http.StatusInternalServerError, TitleTransferFailed
	case errors.Is(err, errs.ErrMalformedAuthHeader):
		return http.StatusBadRequest, TitleTokenFormat
	case errs.IsTokenError(err):
		return http.StatusUnauthorized, TitleInvalidToken
	case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, TitleUnauthorized
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, TitleForbidden
	case errs.IsNotFoundError(err):
		return http.StatusNotFound, TitleNotFound
	case errors.Is(err, errs.ErrDuplicateUser),
		errors.Is(err, errs.ErrDuplicateCard),
		errors.Is(err, errs.ErrConcurrentUpdate),
		errors.Is(err, errs.ErrTransactionFinalized),
		errors.Is(err, errs.ErrCardHasTransactions):
		return http.StatusConflict, TitleConflict
	case errs.IsValidationError(err), errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusBadRequest, TitleValidation
	default:
		return http.StatusInternalServerError, TitleInternal
	}
}

// Abort writes the error response and stops the handler chain
func (r *Renderer) Abort(c *gin.Context, err error) {
	status, title := StatusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError && !errors.Is(err, errs.ErrTransferFailed) {
		message = errs.ErrInternalServer.Error()
	}

	r.log(c, status, err)

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Status:    status,
		Error:     title,
		Message:   message,
		Code:      errs.ErrorCode(err),
		Timestamp: r.timeProvider.Now(),
		Path:      c.Request.URL.Path,
		Details:   details(err),
	})
}

// AbortBinding answers 400 for a request body or query that failed to bind
func (r *Renderer) AbortBinding(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Status:    http.StatusBadRequest,
		Error:     TitleValidation,
		Message:   "Invalid request format",
		Code:      errs.CodeInvalidRequest,
		Timestamp: r.timeProvider.Now(),
		Path:      c.Request.URL.Path,
		Details:   validation.Describe(err),
	})
}

func (r *Renderer) log(c *gin.Context, status int, err error) {
	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"status":     status,
		"request_id": applogger.RequestIDFromContext(c.Request.Context()),
		"error":      err.Error(),
	}
	var lf logFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		r.logger.Error("Request failed", fields)
		return
	}
	r.logger.Debug("Request rejected", fields)
}

func details(err error) map[string]any {
	var funds *errs.InsufficientFundsError
	if errors.As(err, &funds) {
		return map[string]any{
			"availableBalance": funds.Available,
			"requestedAmount":  funds.Requested,
			"deficit":          funds.Deficit,
		}
	}

	var status *errs.CardsNotActiveError
	if errors.As(err, &status) {
		return map[string]any{
			"firstCardStatus":  status.FromStatus,
			"secondCardStatus": status.ToStatus,
		}
	}
	return nil
}
