package middlewares

import (
	"CareLink/repositories"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}

// RespondDomainError maps domain errors to client-facing failures. Both
// denial variants share one constant-shaped 403 body so a response never
// reveals whether the target patient exists or is merely unshared.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotAuthorized),
		errors.Is(err, repositories.ErrNotLinked):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, repositories.ErrInvalidCode):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid code"})
	case errors.Is(err, repositories.ErrAlreadyLinked):
		c.JSON(http.StatusConflict, gin.H{"error": "Already linked"})
	case errors.Is(err, repositories.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
