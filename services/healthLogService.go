package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

type HealthLogService struct {
	repo       *repositories.HealthLogRepository
	authorizer *Authorizer
}

func NewHealthLogService(repo *repositories.HealthLogRepository, authorizer *Authorizer) *HealthLogService {
	return &HealthLogService{repo: repo, authorizer: authorizer}
}

func (s *HealthLogService) Create(ctx context.Context, requesterID string, logEntry *models.HealthLog) error {
	if err := s.authorizer.Authorize(ctx, requesterID, logEntry.PatientID, models.CategoryHealthLogs); err != nil {
		return err
	}
	return s.repo.Create(ctx, logEntry)
}

// ListForRequester returns the owner's logs after the link and category
// check. An authorized requester with no matching rows gets an empty list,
// not an error.
func (s *HealthLogService) ListForRequester(ctx context.Context, requesterID, patientID string) ([]models.HealthLog, error) {
	if err := s.authorizer.Authorize(ctx, requesterID, patientID, models.CategoryHealthLogs); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

// Update mutates an existing log after re-verifying the requester against
// the record's current owner.
func (s *HealthLogService) Update(ctx context.Context, requesterID string, logEntry *models.HealthLog) error {
	existing, err := s.repo.GetByID(ctx, logEntry.ID)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryHealthLogs); err != nil {
		return err
	}
	logEntry.PatientID = existing.PatientID
	logEntry.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, logEntry)
}

func (s *HealthLogService) Delete(ctx context.Context, requesterID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.Authorize(ctx, requesterID, existing.PatientID, models.CategoryHealthLogs); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, existing.PatientID)
}
