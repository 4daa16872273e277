package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/KarimovRD/fullstack-todo/backend/internal/common/errors"
)

var validate = validator.New()

var (
	errInvalidJSON = commonerrors.NewDomainError(
		CodeInvalidJSON,
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Invalid JSON body",
	)

	errValidationFailed = commonerrors.NewDomainError(
		CodeValidationFailed,
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Validation failed",
	)
)

// DecodeValid decodes the request body into v and checks its validate tags.
// Both failure modes come back as 400 domain errors.
func DecodeValid(r *http.Request, v any) error {
	if err := DecodeJSON(r, v); err != nil {
		return errInvalidJSON.WithCause(err)
	}

	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			detail := fmt.Sprintf("field %s failed on the %s rule", first.Field(), first.Tag())
			return commonerrors.NewDomainError(
				CodeValidationFailed,
				commonerrors.CategoryValidation,
				http.StatusBadRequest,
				detail,
			).WithCause(err)
		}
		return errValidationFailed.WithCause(err)
	}

	return nil
}
