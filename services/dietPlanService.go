package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

type DietPlanService struct {
	repo       *repositories.DietPlanRepository
	authorizer *Authorizer
}

func NewDietPlanService(repo *repositories.DietPlanRepository, authorizer *Authorizer) *DietPlanService {
	return &DietPlanService{repo: repo, authorizer: authorizer}
}

func (s *DietPlanService) Create(ctx context.Context, requesterID string, plan *models.DietPlan) error {
	if err := s.authorizer.Authorize(ctx, requesterID, plan.PatientID, models.CategoryDietPlans); err != nil {
		return err
	}
	if requesterID != plan.PatientID {
		plan.CreatedBy = &requesterID
	}
	return s.repo.Create(ctx, plan)
}

func (s *DietPlanService) ListForRequester(ctx context.Context, requesterID, patientID string) ([]models.DietPlan, error) {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryDietPlans); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *DietPlanService) Update(ctx context.Context, requesterID string, plan *models.DietPlan) error {
	existing, err := s.repo.GetByID(ctx, plan.ID)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryDietPlans); err != nil {
		return err
	}
	plan.PatientID = existing.PatientID
	plan.CreatedBy = existing.CreatedBy
	plan.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, plan)
}

func (s *DietPlanService) Delete(ctx context.Context, requesterID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryDietPlans); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.PatientID)
}
