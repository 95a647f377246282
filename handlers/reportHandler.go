package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var report models.MedicalReport
	if err := c.ShouldBindJSON(&report); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	report.PatientID = c.Param("patient_id")

	if err := h.service.Create(c.Request.Context(), requesterID, &report); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	// The file payload is not echoed back on create.
	report.FileData = ""
	middlewares.RespondJSON(c, report, http.StatusCreated)
}

func (h *ReportHandler) GetReports(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	reports, err := h.service.ListForRequester(c.Request.Context(), requesterID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, reports, http.StatusOK)
}

// GetReport returns a single report with its embedded file.
func (h *ReportHandler) GetReport(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	report, err := h.service.GetForRequester(c.Request.Context(), requesterID, c.Param("report_id"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, report, http.StatusOK)
}

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requesterID, c.Param("report_id")); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Report deleted"}, http.StatusOK)
}
