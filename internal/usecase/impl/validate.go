// Package impl contains the application-specific business rules
// implementations.
package impl

import (
	domainerrors "fooddesk/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// validate is shared by every service; validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// checkInput runs the struct-tag validation on an input DTO and maps any
// failure onto the domain validation error, so callers only ever need
// errors.Is(err, domainerrors.ErrValidationFailed).
func checkInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
