package errors

import (
	"net/http"

	"codeberg.org/creatorkit/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//     (history writes and webhook delivery are best-effort and never surface)
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// represents a standardized error response
type ErrorResponse struct {
	Error         string `json:"error"`                    // error code (e.g., "unauthorized", "limit_reached")
	Message       string `json:"message"`                  // user-friendly message
	Details       string `json:"details,omitempty"`        // optional details (sanitized in production)
	RemainingUses *int   `json:"remaining_uses,omitempty"` // set on limit_reached responses
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "permission denied"
	}

	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeForbidden,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 validation error naming the offending field
func ValidationError(c *gin.Context, message string) {
	if message == "" {
		message = "validation failed"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
	})
}

// returns a 429 quota exhaustion error, distinct from generic rate
// limiting so clients can render an upgrade prompt
func LimitReached(c *gin.Context, message string) {
	if message == "" {
		message = "daily limit reached, upgrade to pro for unlimited generations"
	}

	zero := 0

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:         CodeLimitReached,
		Message:       message,
		RemainingUses: &zero,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 409 conflict error
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "resource conflict"
	}

	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeConflict,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 503 for persistence collaborator failures; the caller may retry
func StoreUnavailable(c *gin.Context, message string, err error) {
	if message == "" {
		message = "storage temporarily unavailable"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   CodeStoreUnavailable,
		Message: message,
		Details: sanitizeError(err),
	})
}
