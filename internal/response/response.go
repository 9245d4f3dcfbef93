// Package response defines the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somye55/colbin-recruitment-platform/internal/validation"
)

type Body struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    any                     `json:"data,omitempty"`
	User    any                     `json:"user,omitempty"`
	Token   string                  `json:"token,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// JSON writes the envelope; Success is derived from the status code.
func JSON(c *gin.Context, status int, body Body) {
	body.Success = status < http.StatusBadRequest
	c.JSON(status, body)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Success: false, Message: message})
}

// AbortUnauthorized ends the request with the single undifferentiated 401
// used for every authentication failure.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Body{
		Success: false,
		Message: "invalid or expired token",
	})
}

func ValidationFailed(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}
