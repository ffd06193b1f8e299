package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
)

// HandleAPIError maps workflow errors to the HTTP error taxonomy. Unknown
// errors become a generic 500; the detail stays in the server log.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrorsIsValidation(err):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case errors.Is(err, apperrors.ErrStaffNotApproved):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Staff account is not approved")))

	case errors.Is(err, apperrors.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Account not found")))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))

	case errors.Is(err, apperrors.ErrStaffIDExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Staff ID already exists")))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// apperrorsIsValidation groups the request-shaped failures that map to 400
func apperrorsIsValidation(err error) bool {
	return errors.Is(err, apperrors.ErrValidationFailed) ||
		errors.Is(err, apperrors.ErrMissingField) ||
		errors.Is(err, apperrors.ErrInvalidEmail) ||
		errors.Is(err, apperrors.ErrInvalidPassword) ||
		errors.Is(err, apperrors.ErrInvalidRole) ||
		errors.Is(err, apperrors.ErrBadRequest)
}
