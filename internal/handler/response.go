package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"apicatalog/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PageMeta   `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageMeta holds pagination metadata.
type PageMeta struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PageMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrApiNotFound):
		return http.StatusNotFound, "API_NOT_FOUND", "api not found"
	case errors.Is(err, domain.ErrApiIllegalState):
		return http.StatusConflict, "API_ILLEGAL_STATE", "api cannot be updated in its current state"
	case errors.Is(err, domain.ErrInvalidPageable):
		return http.StatusBadRequest, "INVALID_PAGEABLE", "page and size must not be negative"
	case errors.Is(err, domain.ErrInvalidCriteria):
		return http.StatusBadRequest, "INVALID_CRITERIA", err.Error()
	case errors.Is(err, domain.ErrUnsupportedExport):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("internal error")
	}
	RespondError(c, status, code, msg)
}
