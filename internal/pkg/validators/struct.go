// Package validators wraps go-playground/validator with the custom rules used across the service
// and converts validation failures into apperrors.ErrValidation.
package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("rsakeysize", RSAKeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}

	return validate, nil
}

// ValidateStruct validates s and reports every failing field in a single error wrapping
// apperrors.ErrValidation.
func ValidateStruct(s interface{}) error {
	validate, err := New()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(messages, "; "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	return nil
}
