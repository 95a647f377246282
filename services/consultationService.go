package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

type ConsultationService struct {
	repo       *repositories.ConsultationRepository
	authorizer *Authorizer
}

func NewConsultationService(repo *repositories.ConsultationRepository, authorizer *Authorizer) *ConsultationService {
	return &ConsultationService{repo: repo, authorizer: authorizer}
}

// Create records a visit. A doctor writing into a patient's chart passes the
// same link-and-category gate as reads, and is stamped as the author.
func (s *ConsultationService) Create(ctx context.Context, requesterID string, consultation *models.Consultation) error {
	if err := s.authorizer.Authorize(ctx, requesterID, consultation.PatientID, models.CategoryConsultations); err != nil {
		return err
	}
	if requesterID != consultation.PatientID {
		consultation.DoctorID = requesterID
	}
	return s.repo.Create(ctx, consultation)
}

func (s *ConsultationService) ListForRequester(ctx context.Context, requesterID, patientID string) ([]models.Consultation, error) {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryConsultations); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

// ListByDoctor is the doctor's own worklist; no link check applies because
// every row already names the doctor as its author.
func (s *ConsultationService) ListByDoctor(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *ConsultationService) Update(ctx context.Context, requesterID string, consultation *models.Consultation) error {
	existing, err := s.repo.GetByID(ctx, consultation.ID)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryConsultations); err != nil {
		return err
	}
	consultation.PatientID = existing.PatientID
	consultation.DoctorID = existing.DoctorID
	consultation.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, consultation)
}

func (s *ConsultationService) Delete(ctx context.Context, requesterID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryConsultations); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.PatientID)
}
