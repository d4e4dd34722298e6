package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure envelope of the REST API:
//
//	{"success": false, "error": "Validation failed", "errors": {...}}
//
// Errors is only populated for validation failures.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Errors  interface{} `json:"errors,omitempty"`
}

// GinErrorHandler renders AppErrors as JSON responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		if !h.Debug {
			// Hide internals from clients in production
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
		log.Printf("Server error: %v", appErr)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Errors:  appErr.Details,
	})
}

// HandleError is the shortcut used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}
