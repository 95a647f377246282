package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	service services.LinkService
}

func NewLinkHandler(service services.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// LinkViaInvite creates a link from the calling patient to the doctor whose
// invite code is supplied.
func (h *LinkHandler) LinkViaInvite(c *gin.Context) {
	patientID, ok := principalID(c)
	if !ok {
		return
	}

	var body struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	doctor, err := h.service.LinkViaInvite(c.Request.Context(), patientID, body.InviteCode)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Linked successfully", "doctor": doctor}, http.StatusCreated)
}

// SetPermissions replaces the calling patient's permission set on their link
// to the doctor in the path.
func (h *LinkHandler) SetPermissions(c *gin.Context) {
	patientID, ok := principalID(c)
	if !ok {
		return
	}
	doctorID := c.Param("doctor_id")

	var permissions models.PermissionSet
	if err := c.ShouldBindJSON(&permissions); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	if err := h.service.SetPermissions(c.Request.Context(), patientID, doctorID, permissions); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Permissions updated"}, http.StatusOK)
}

// MyDoctors lists the calling patient's linked doctors.
func (h *LinkHandler) MyDoctors(c *gin.Context) {
	patientID, ok := principalID(c)
	if !ok {
		return
	}

	doctors, err := h.service.MyDoctors(c.Request.Context(), patientID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, doctors, http.StatusOK)
}

// MyPatients lists the calling doctor's linked patients, including pending
// share codes for unclaimed shadow identities.
func (h *LinkHandler) MyPatients(c *gin.Context) {
	doctorID, ok := principalID(c)
	if !ok {
		return
	}

	patients, err := h.service.MyPatients(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, patients, http.StatusOK)
}
