package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DietPlanHandler struct {
	service *services.DietPlanService
}

func NewDietPlanHandler(service *services.DietPlanService) *DietPlanHandler {
	return &DietPlanHandler{service: service}
}

func (h *DietPlanHandler) CreateDietPlan(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var plan models.DietPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	plan.PatientID = c.Param("patient_id")

	if err := h.service.Create(c.Request.Context(), requesterID, &plan); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, plan, http.StatusCreated)
}

func (h *DietPlanHandler) GetDietPlans(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	plans, err := h.service.ListForRequester(c.Request.Context(), requesterID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, plans, http.StatusOK)
}

func (h *DietPlanHandler) UpdateDietPlan(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	var plan models.DietPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	plan.ID = c.Param("diet_plan_id")

	if err := h.service.Update(c.Request.Context(), requesterID, &plan); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, plan, http.StatusOK)
}

func (h *DietPlanHandler) DeleteDietPlan(c *gin.Context) {
	requesterID, ok := principalID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requesterID, c.Param("diet_plan_id")); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Diet plan deleted"}, http.StatusOK)
}
