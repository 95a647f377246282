package handlers

import (
	"CareLink/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

// principalID extracts the authenticated user ID, writing the 401 itself
// when the principal is missing.
func principalID(c *gin.Context) (string, bool) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Missing principal", http.StatusUnauthorized, err)
		return "", false
	}
	return userID, true
}
