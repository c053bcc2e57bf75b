// Package httpapi exposes the REST surface of the server: a gin router,
// the bearer-token middleware, and the auth/document handlers.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/gin-gonic/gin"
)

// respondData writes the standard success envelope.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError maps a taxonomy error to its HTTP status and writes the
// standard failure envelope. Anything outside the taxonomy falls through
// to a generic 500 so internal details never reach the client.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Server Error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusBadRequest
		message = "Email already registered"
	case errors.Is(err, apperr.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "Not authorized"
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
		message = "Not authorized to access this document"
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		message = "Document not found"
	}

	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
