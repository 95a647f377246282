package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthLogHandler struct {
	service *services.HealthLogService
}

func NewHealthLogHandler(service *services.HealthLogService) *HealthLogHandler {
	return &HealthLogHandler{service: service}
}

func (h *HealthLogHandler) CreateHealthLog(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var logEntry models.HealthLog
	if err := c.ShouldBindJSON(&logEntry); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	logEntry.PatientID = c.Param("patient_id")

	if err := h.service.Create(c.Request.Context(), requesterID, &logEntry); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, logEntry, http.StatusCreated)
}

func (h *HealthLogHandler) GetHealthLogs(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	logs, err := h.service.ListForRequester(c.Request.Context(), requesterID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, logs, http.StatusOK)
}

func (h *HealthLogHandler) UpdateHealthLog(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var logEntry models.HealthLog
	if err := c.ShouldBindJSON(&logEntry); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	logEntry.ID = c.Param("log_id")

	if err := h.service.Update(c.Request.Context(), requesterID, &logEntry); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, logEntry, http.StatusOK)
}

func (h *HealthLogHandler) DeleteHealthLog(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requesterID, c.Param("log_id")); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Health log deleted"}, http.StatusOK)
}
