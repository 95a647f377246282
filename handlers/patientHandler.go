package handlers

import (
	"CareLink/middlewares"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service services.PatientService
}

func NewPatientHandler(service services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// RegisterPatient lets a doctor register a patient. With an email the
// patient gets a full account and a temporary password; without one a
// shadow identity is created behind the returned share code.
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	doctorID, ok := principalID(c)
	if !ok {
		return
	}

	var input services.PatientRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	result, err := h.service.RegisterByDoctor(c.Request.Context(), doctorID, input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, result, http.StatusCreated)
}
