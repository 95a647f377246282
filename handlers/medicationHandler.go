package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MedicationHandler struct {
	service *services.MedicationService
}

func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var med models.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	med.PatientID = c.Param("patient_id")

	if err := h.service.Create(c.Request.Context(), requesterID, &med); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, med, http.StatusCreated)
}

// GetMedications lists active prescriptions by default; pass
// ?include_inactive=true for the full history.
func (h *MedicationHandler) GetMedications(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}
	includeInactive := c.DefaultQuery("include_inactive", "false") == "true"

	meds, err := h.service.ListForRequester(c.Request.Context(), requesterID, c.Param("patient_id"), includeInactive)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, meds, http.StatusOK)
}

func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var med models.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	med.ID = c.Param("medication_id")

	if err := h.service.Update(c.Request.Context(), requesterID, &med); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, med, http.StatusOK)
}

// DeleteMedication deactivates by default; ?permanent=true removes the row.
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}
	id := c.Param("medication_id")

	var err error
	if c.DefaultQuery("permanent", "false") == "true" {
		err = h.service.Delete(c.Request.Context(), requesterID, id)
	} else {
		err = h.service.Deactivate(c.Request.Context(), requesterID, id)
	}
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Medication removed"}, http.StatusOK)
}
