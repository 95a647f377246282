package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

type MedicalHistoryService struct {
	repo       *repositories.MedicalHistoryRepository
	authorizer *Authorizer
}

func NewMedicalHistoryService(repo *repositories.MedicalHistoryRepository, authorizer *Authorizer) *MedicalHistoryService {
	return &MedicalHistoryService{repo: repo, authorizer: authorizer}
}

// Upsert writes the patient's single history row; the category check covers
// both the first write and every later amendment.
func (s *MedicalHistoryService) Upsert(ctx context.Context, requesterID string, history *models.MedicalHistory) error {
	if err := s.authorizer.Authorize(ctx, requesterID, history.PatientID, models.CategoryMedicalHistory); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, history)
}

func (s *MedicalHistoryService) GetForRequester(ctx context.Context, requesterID, patientID string) (*models.MedicalHistory, error) {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryMedicalHistory); err != nil {
		return nil, err
	}
	return s.repo.GetByPatient(ctx, patientID)
}

func (s *MedicalHistoryService) Delete(ctx context.Context, requesterID, patientID string) error {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryMedicalHistory); err != nil {
		return err
	}
	return s.repo.Delete(ctx, patientID)
}
