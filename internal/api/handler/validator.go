package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// joMobilePattern matches Jordanian mobile numbers: 077/078/079 followed by
// seven digits.
var joMobilePattern = regexp.MustCompile(`^07[789][0-9]{7}$`)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// It registers the jo_mobile rule used by the submission schemas.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("jo_mobile", func(fl validator.FieldLevel) bool {
		return joMobilePattern.MatchString(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return field + " is required when " + strings.ToLower(fe.Param())
	case "excluded_if":
		return field + " must be empty when " + strings.ToLower(fe.Param())
	case "email":
		return field + " must be a valid email"
	case "jo_mobile":
		return field + " must be a valid mobile number (077/078/079 followed by 7 digits)"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
