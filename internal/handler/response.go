package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/logger"
	"bloom/internal/middleware"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// MessageResponse is the body of every text reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondOK sends a 200 response with data as the body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondMessage sends a 200 {"message": ...} response.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail, Code: code})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Upstream and validation failures expose the wrapped message, which names
// the provider error or the missing columns.
func MapDomainError(err error) (status int, code, detail string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error()
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, "EMPTY_MESSAGE", "message must not be empty"
	case errors.Is(err, domain.ErrUnreadableFile):
		return http.StatusBadRequest, "UNREADABLE_FILE", err.Error()
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrValidationFailure):
		return http.StatusBadRequest, "VALIDATION_FAILED", err.Error()
	case errors.Is(err, domain.ErrDependencyMissing):
		return http.StatusInternalServerError, "DEPENDENCY_MISSING", "pdf support is not available on this server"
	case errors.Is(err, domain.ErrConfigurationMissing):
		return http.StatusInternalServerError, "CONFIGURATION_MISSING", "model API key is not configured"
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusBadGateway, "UPSTREAM_FAILURE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, detail := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		logger.Get().Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("code", code),
			zap.Error(err))
	}
	_ = c.Error(err)
	RespondError(c, status, code, detail)
}
