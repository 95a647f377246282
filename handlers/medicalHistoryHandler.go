package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MedicalHistoryHandler struct {
	service *services.MedicalHistoryService
}

func NewMedicalHistoryHandler(service *services.MedicalHistoryService) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{service: service}
}

// UpsertMedicalHistory writes the patient's single history record, creating
// or amending it in place.
func (h *MedicalHistoryHandler) UpsertMedicalHistory(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var history models.MedicalHistory
	if err := c.ShouldBindJSON(&history); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	history.PatientID = c.Param("patient_id")

	if err := h.service.Upsert(c.Request.Context(), requesterID, &history); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, history, http.StatusOK)
}

func (h *MedicalHistoryHandler) GetMedicalHistory(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	history, err := h.service.GetForRequester(c.Request.Context(), requesterID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, history, http.StatusOK)
}

func (h *MedicalHistoryHandler) DeleteMedicalHistory(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requesterID, c.Param("patient_id")); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Medical history deleted"}, http.StatusOK)
}
