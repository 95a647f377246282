package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

type MedicationService struct {
	repo       *repositories.MedicationRepository
	authorizer *Authorizer
}

func NewMedicationService(repo *repositories.MedicationRepository, authorizer *Authorizer) *MedicationService {
	return &MedicationService{repo: repo, authorizer: authorizer}
}

func (s *MedicationService) Create(ctx context.Context, requesterID string, med *models.Medication) error {
	if err := s.authorizer.Authorize(ctx, requesterID, med.PatientID, models.CategoryMedications); err != nil {
		return err
	}
	// A prescribing doctor is recorded on the row; self-added entries are not.
	if requesterID != med.PatientID {
		med.PrescribedBy = &requesterID
	}
	return s.repo.Create(ctx, med)
}

// ListForRequester defaults to the active-only view; includeInactive widens
// it to the full prescription history.
func (s *MedicationService) ListForRequester(ctx context.Context, requesterID, patientID string, includeInactive bool) ([]models.Medication, error) {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryMedications); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID, includeInactive)
}

func (s *MedicationService) Update(ctx context.Context, requesterID string, med *models.Medication) error {
	existing, err := s.repo.GetByID(ctx, med.ID)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryMedications); err != nil {
		return err
	}
	med.PatientID = existing.PatientID
	med.PrescribedBy = existing.PrescribedBy
	med.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, med)
}

// Deactivate is the default removal path: the prescription stays on record
// with active=false.
func (s *MedicationService) Deactivate(ctx context.Context, requesterID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryMedications); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id, existing.PatientID)
}

// Delete removes the row permanently.
func (s *MedicationService) Delete(ctx context.Context, requesterID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryMedications); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.PatientID)
}
