package handlers

import (
	"CareLink/middlewares"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	service services.MigrationService
}

func NewClaimHandler(service services.MigrationService) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// Claim redeems a one-time share code, migrating the shadow identity's
// records to the calling user's account.
func (h *ClaimHandler) Claim(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	var body struct {
		ShareCode string `json:"share_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	result, err := h.service.Claim(c.Request.Context(), body.ShareCode, userID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}

	message := "Records linked successfully"
	if result.AlreadyLinked {
		message = "Already linked"
	}
	middlewares.RespondJSON(c, gin.H{"message": message, "already_linked": result.AlreadyLinked}, http.StatusOK)
}
