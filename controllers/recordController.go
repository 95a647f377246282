package controllers

import (
	"CareLink/handlers"
	"CareLink/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRecordRoutes registers the per-category record routes. Authorization
// against the link registry happens in the services, so these routes only
// require an authenticated caller.
func SetupRecordRoutes(
	router *gin.Engine,
	healthLogHandler *handlers.HealthLogHandler,
	medicationHandler *handlers.MedicationHandler,
	reportHandler *handlers.ReportHandler,
	dietPlanHandler *handlers.DietPlanHandler,
	medicalHistoryHandler *handlers.MedicalHistoryHandler,
	consultationHandler *handlers.ConsultationHandler,
) {
	authed := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		authed.POST("/patients/:patient_id/health_logs", healthLogHandler.CreateHealthLog)
		authed.GET("/patients/:patient_id/health_logs", healthLogHandler.GetHealthLogs)
		authed.PUT("/patients/:patient_id/health_logs/:log_id", healthLogHandler.UpdateHealthLog)
		authed.DELETE("/patients/:patient_id/health_logs/:log_id", healthLogHandler.DeleteHealthLog)

		authed.POST("/patients/:patient_id/medications", medicationHandler.CreateMedication)
		authed.GET("/patients/:patient_id/medications", medicationHandler.GetMedications)
		authed.PUT("/patients/:patient_id/medications/:medication_id", medicationHandler.UpdateMedication)
		authed.DELETE("/patients/:patient_id/medications/:medication_id", medicationHandler.DeleteMedication)

		authed.POST("/patients/:patient_id/reports", reportHandler.CreateReport)
		authed.GET("/patients/:patient_id/reports", reportHandler.GetReports)
		authed.GET("/patients/:patient_id/reports/:report_id", reportHandler.GetReport)
		authed.DELETE("/patients/:patient_id/reports/:report_id", reportHandler.DeleteReport)

		authed.POST("/patients/:patient_id/diet_plans", dietPlanHandler.CreateDietPlan)
		authed.GET("/patients/:patient_id/diet_plans", dietPlanHandler.GetDietPlans)
		authed.PUT("/patients/:patient_id/diet_plans/:diet_plan_id", dietPlanHandler.UpdateDietPlan)
		authed.DELETE("/patients/:patient_id/diet_plans/:diet_plan_id", dietPlanHandler.DeleteDietPlan)

		authed.PUT("/patients/:patient_id/medical_history", medicalHistoryHandler.UpsertMedicalHistory)
		authed.GET("/patients/:patient_id/medical_history", medicalHistoryHandler.GetMedicalHistory)
		authed.DELETE("/patients/:patient_id/medical_history", medicalHistoryHandler.DeleteMedicalHistory)

		authed.POST("/patients/:patient_id/consultations", consultationHandler.CreateConsultation)
		authed.GET("/patients/:patient_id/consultations", consultationHandler.GetConsultations)
		authed.PUT("/patients/:patient_id/consultations/:consultation_id", consultationHandler.UpdateConsultation)
		authed.DELETE("/patients/:patient_id/consultations/:consultation_id", consultationHandler.DeleteConsultation)

		authed.GET("/me/consultations", consultationHandler.GetMyConsultations)
	}
}
