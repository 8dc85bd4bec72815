package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel service errors to HTTP statuses.
// Ingestion failures carry their specific message so the user sees an
// actionable reason, never a generic failure.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCount),
		errors.Is(err, ErrInvalidEntryDate),
		errors.Is(err, ErrInvalidSourceType),
		errors.Is(err, ErrInvalidTarget),
		errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrDuplicateAccountName),
		errors.Is(err, ErrDuplicateWhatsapp),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnlinkedAccount),
		errors.Is(err, ErrAccountDisabled),
		errors.Is(err, ErrUserDisabled):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPrayerNotFound),
		errors.Is(err, ErrBookNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		log.Printf("Store error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
