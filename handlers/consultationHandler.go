package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	service *services.ConsultationService
}

func NewConsultationHandler(service *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var consultation models.Consultation
	if err := c.ShouldBindJSON(&consultation); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	consultation.PatientID = c.Param("patient_id")

	if err := h.service.Create(c.Request.Context(), requesterID, &consultation); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, consultation, http.StatusCreated)
}

func (h *ConsultationHandler) GetConsultations(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	consultations, err := h.service.ListForRequester(c.Request.Context(), requesterID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, consultations, http.StatusOK)
}

// GetMyConsultations is the calling doctor's own worklist.
func (h *ConsultationHandler) GetMyConsultations(c *gin.Context) {
	doctorID, ok := principalID(c)
	if !ok {
		return
	}

	consultations, err := h.service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, consultations, http.StatusOK)
}

func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var consultation models.Consultation
	if err := c.ShouldBindJSON(&consultation); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	consultation.ID = c.Param("consultation_id")

	if err := h.service.Update(c.Request.Context(), requesterID, &consultation); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, consultation, http.StatusOK)
}

func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requesterID, c.Param("consultation_id")); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Consultation deleted"}, http.StatusOK)
}
