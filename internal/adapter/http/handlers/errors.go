package handlers

import (
	"errors"
	"log"
	"net/http"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/usecase"
	"car_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapError translates use case errors into the HTTP envelope. Specific errors are
// matched before their categories.
func mapError(err error) *pkg.AppError {
	reason := apperr.Reason(err)
	switch {
	case errors.Is(err, usecase.ErrSlotFull):
		return pkg.NewDomainError("SLOT_FULL", "The mechanic is fully booked on this day", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainError("EMAIL_TAKEN", reason, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", reason, err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrMediaTooLarge):
		return pkg.NewDomainError("MEDIA_TOO_LARGE", reason, err, http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrMediaNotAvailable):
		return pkg.NewDomainError("MEDIA_STORAGE_DISABLED", "Logo uploads are not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, apperr.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", reason, err, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", reason, err, http.StatusUnauthorized)
	case errors.Is(err, apperr.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", reason, err, http.StatusForbidden)
	case errors.Is(err, apperr.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", reason, err, http.StatusNotFound)
	case errors.Is(err, apperr.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", reason, err, http.StatusConflict)
	case errors.Is(err, apperr.ErrConflict):
		return pkg.NewDomainError("CONFLICT", reason, err, http.StatusConflict)
	case errors.Is(err, apperr.ErrInference):
		return pkg.NewDomainError("INFERENCE_FAILED", reason, err, http.StatusUnprocessableEntity)
	case errors.Is(err, apperr.ErrIndeterminate):
		return pkg.NewDomainError("OUTCOME_UNKNOWN", "The request may or may not have been saved; refresh before retrying", err, http.StatusServiceUnavailable)
	case errors.Is(err, apperr.ErrNetwork):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "A remote service is unavailable, please try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] request failed path=%s code=%s err=%v", c.FullPath(), appErr.Code, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

func writeBadRequest(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
