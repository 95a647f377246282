package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

type ReportService struct {
	repo       *repositories.ReportRepository
	authorizer *Authorizer
}

func NewReportService(repo *repositories.ReportRepository, authorizer *Authorizer) *ReportService {
	return &ReportService{repo: repo, authorizer: authorizer}
}

func (s *ReportService) Create(ctx context.Context, requesterID string, report *models.MedicalReport) error {
	if err := s.authorizer.Authorize(ctx, requesterID, report.PatientID, models.CategoryReports); err != nil {
		return err
	}
	report.UploadedBy = requesterID
	return s.repo.Create(ctx, report)
}

func (s *ReportService) ListForRequester(ctx context.Context, requesterID, patientID string) ([]models.MedicalReport, error) {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryReports); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

// GetForRequester returns a single report including its file payload.
func (s *ReportService) GetForRequester(ctx context.Context, requesterID, id string) (*models.MedicalReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, report.PatientID, models.CategoryReports); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Delete(ctx context.Context, requesterID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryReports); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.PatientID)
}
