package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/service"
	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// not owned and absent are the same answer
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrSuggestionsDisabled):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.MsgUnexpected
	}

	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return shared.MsgUnauthorized
	case errors.Is(err, store.ErrTaskNotFound):
		return shared.MsgTaskNotFound
	case store.IsNotFoundError(err):
		return shared.MsgNotFound
	case errors.Is(err, store.ErrEmailExists):
		return shared.MsgEmailTaken
	case errors.Is(err, service.ErrInvalidCredentials):
		return shared.MsgInvalidCredentials
	case errors.Is(err, service.ErrSuggestionsDisabled):
		return shared.MsgSuggestionsOff
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.As(err, &domainErr):
		return invalidFieldMessage(domainErr.Field, domainErr.Message)
	case errors.Is(err, store.ErrInvalidEntity):
		return shared.MsgInvalidEntity
	case errors.Is(err, shared.ErrEmptyBody):
		return shared.MsgInvalidRequest
	default:
		return shared.MsgUnexpected
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending JSON field.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return shared.MsgValidation
	}
	fe := errs[0]
	return invalidFieldMessage(strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

func invalidFieldMessage(field, message string) string {
	return fmt.Sprintf("Campo %s inválido: %s", field, message)
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "campo obligatorio"
	case "email":
		return "formato de email inválido"
	case "min":
		return "demasiado corto"
	case "max":
		return "demasiado largo"
	case "datetime":
		return "debe ser una fecha en formato YYYY-MM-DD"
	case "oneof":
		return "valor no permitido"
	default:
		return "validación fallida"
	}
}

// HandleAPIError writes the error response for err. Unauthorized responses
// carry the Bearer challenge.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithHeader("WWW-Authenticate", "Bearer"))
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
