package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom tag names usable in binding tags
const (
	TagRole     = "role"
	TagMoney    = "money"
	TagCurrency = "currency"
)

var errUnexpectedEngine = errors.New("gin binding engine is not a go-playground validator")

// RegisterWithGin installs the custom rules on gin's default binding engine
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedEngine
	}
	return Register(v)
}

// Register installs the custom rules on v
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagRole:     validRole,
		TagMoney:    validMoney,
		TagCurrency: validCurrency,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

func validRole(fl validator.FieldLevel) bool {
	_, err := entity.ParseRole(fl.Field().String())
	return err == nil
}

func validMoney(fl validator.FieldLevel) bool {
	_, err := entity.ParseAmount(fl.Field().String())
	return err == nil
}

func validCurrency(fl validator.FieldLevel) bool {
	_, err := entity.NormalizeCurrency(fl.Field().String())
	return err == nil
}

// Describe turns a binding failure into a field -> reason map for error details
func Describe(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[lowerFirst(fe.Field())] = reason(fe)
	}
	return details
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case TagRole:
		return "must be USER or ADMIN"
	case TagMoney:
		return "must be a positive amount with at most two decimals"
	case TagCurrency:
		return "must be a three letter currency code"
	default:
		return "failed on " + fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
