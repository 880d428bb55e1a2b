package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Every controller
// funnels failures through here so status codes and body shapes stay uniform.
func HandleAPIError(c *gin.Context, err error) {
	code, errorCode, message := classify(err)

	// A wrapped CustomError carries a user-facing message that beats the
	// generic one for its kind. Server-side failures keep the generic text so
	// internals never reach the client.
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" && code < http.StatusInternalServerError {
		message = custom.Message
	}

	errorDetail := dto.NewErrorDetail(errorCode, message)
	if custom != nil && custom.Details != nil {
		errorDetail = errorDetail.WithDetails(custom.Details)
	}

	c.JSON(code, dto.NewErrorResponse(errorDetail))
}

func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "An account with this email already exists"
	case errors.Is(err, apperrors.ErrClubFull):
		return http.StatusConflict, dto.ErrorCodeResourceConflict, "This club has reached its member limit"
	case errors.Is(err, apperrors.ErrEventFull):
		return http.StatusConflict, dto.ErrorCodeResourceConflict, "This event has reached its attendee limit"
	case errors.Is(err, apperrors.ErrListingSold):
		return http.StatusConflict, dto.ErrorCodeResourceConflict, "This listing has already been sold"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeResourceConflict, "Resource conflict"
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Please use your college email address"
	case errors.Is(err, apperrors.ErrWeakPassword):
		return http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Password must be at least 6 characters"
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Passwords do not match"
	case errors.Is(err, apperrors.ErrConsentRequired):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Privacy policy consent is required"
	case errors.Is(err, apperrors.ErrMissingField):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Required field missing"
	case errors.Is(err, apperrors.ErrInvalidValue):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid field value"
	case errors.Is(err, apperrors.ErrTooShort):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Content is too short"
	case errors.Is(err, apperrors.ErrTooLong):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Content is too long"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusForbidden, dto.ErrorCodeUnauthorized, "Permission denied"
	case errors.Is(err, apperrors.ErrPersistence):
		return http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "Storage error"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
