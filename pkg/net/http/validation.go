package http

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Validation errors.
var (
	// ErrValidationFailed is returned when struct validation fails.
	ErrValidationFailed = errors.New("validation failed")
	// ErrBodyParseFailed is returned when request body parsing fails.
	ErrBodyParseFailed = errors.New("failed to parse request body")
	// ErrValidatorInit is returned when custom validator registration fails
	// during initialization.
	ErrValidatorInit = errors.New("validator initialization failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidators creates and configures the validator with custom validation rules.
// Returns an error if any custom validator registration fails.
func initValidators() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Register custom validator for decimal amounts that must be positive.
	// The validator cannot compare decimal.Decimal with gt=0 tags, so the
	// field is accessed directly.
	if err := vld.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}

		return value.IsPositive()
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'positive_decimal': %w", ErrValidatorInit, err)
	}

	return vld, nil
}

// validatorInstance returns the lazily-initialized shared validator.
func validatorInstance() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidators()
	})

	return validate, errValidate
}

// ParseAndValidate parses the JSON request body into out and runs struct
// validation against its validator tags. The returned error wraps
// ErrBodyParseFailed or ErrValidationFailed with a field-level message
// suitable for a 400 response.
func ParseAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %s", ErrBodyParseFailed, err.Error())
	}

	vld, err := validatorInstance()
	if err != nil {
		return err
	}

	if err := vld.Struct(out); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return fmt.Errorf("%w: %s", ErrValidationFailed, formatFieldErrors(fieldErrors))
		}

		return fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	return nil
}

// formatFieldErrors renders field-level validation failures as a single
// human-readable message.
func formatFieldErrors(fieldErrors validator.ValidationErrors) string {
	messages := make([]string, 0, len(fieldErrors))

	for _, fieldError := range fieldErrors {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be greater than or equal to %s", field, fieldError.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param()))
		case "positive_decimal":
			messages = append(messages, fmt.Sprintf("%s must be a positive amount", field))
		default:
			messages = append(messages, fmt.Sprintf("%s failed on %s", field, fieldError.Tag()))
		}
	}

	return strings.Join(messages, "; ")
}
