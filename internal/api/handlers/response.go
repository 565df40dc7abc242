package handlers

import (
	"errors"
	"net/http"

	"production-scheduler-backend/internal/auth"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SuccessResponse is the envelope of every successful API answer
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool        `json:"success" example:"false"`
	Error   string      `json:"error" example:"error message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, err error, data interface{}) {
	c.JSON(statusFor(err), ErrorResponse{Success: false, Error: err.Error(), Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: message})
}

// statusFor maps application errors to HTTP status codes
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrInvalidTimelineView),
		errors.Is(err, apperrors.ErrNoValidOrders):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsBatchTooLarge(err):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// identityFrom reads the caller identity set by the auth middleware
func identityFrom(c *gin.Context) service.Identity {
	userID, _ := auth.GetUserID(c)
	email, _ := auth.GetUserEmail(c)
	return service.Identity{
		UserID:      userID,
		Email:       email,
		Permissions: auth.GetPermissions(c),
	}
}
