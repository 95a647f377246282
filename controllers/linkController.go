package controllers

import (
	"CareLink/handlers"
	"CareLink/middlewares"
	"CareLink/models"

	"github.com/gin-gonic/gin"
)

// SetupLinkRoutes registers the patient onboarding, linking, and share-code
// claim routes. Everything here requires an authenticated caller.
func SetupLinkRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, linkHandler *handlers.LinkHandler, claimHandler *handlers.ClaimHandler) {
	// Doctor routes: registering patients is doctor-only
	doctorGroup := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
	)
	{
		doctorGroup.POST("/patients", patientHandler.RegisterPatient)
	}

	authed := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		authed.POST("/links/invite", linkHandler.LinkViaInvite)
		authed.PUT("/links/:doctor_id/permissions", linkHandler.SetPermissions)
		authed.GET("/me/doctors", linkHandler.MyDoctors)
		authed.GET("/me/patients", linkHandler.MyPatients)

		authed.POST("/claim", claimHandler.Claim)
	}
}
