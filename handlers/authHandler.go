package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"CareLink/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service services.AuthService
}

func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles self-service registration for patients and doctors.
func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, profile, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}

	response := gin.H{"user": user}
	if profile != nil {
		response["invite_code"] = profile.InviteCode
	}
	middlewares.RespondJSON(c, response, http.StatusCreated)
}

// Login authenticates the user and returns tokens along with the principal.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, err := h.service.Login(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		middlewares.HttpError(c, "Invalid email or password", http.StatusUnauthorized, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate tokens", http.StatusInternalServerError, err)
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	middlewares.RespondJSON(c, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	}, http.StatusOK)
}

// RefreshToken exchanges a valid token for a fresh access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Missing principal", http.StatusUnauthorized, err)
		return
	}

	accessToken, err := utils.GenerateAccessToken(userID, role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate access token", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"accessToken": accessToken}, http.StatusOK)
}

// Profile returns the calling user, plus the doctor profile when one exists.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}

	response := gin.H{"user": user}
	if user.Role == models.RoleDoctor {
		if profile, err := h.service.GetDoctorProfile(c.Request.Context(), userID); err == nil {
			response["doctor_profile"] = profile
		}
	}
	middlewares.RespondJSON(c, response, http.StatusOK)
}

// Logoff logs the user out by clearing cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(http.StatusOK)
}
