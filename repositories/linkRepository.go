package repositories

import (
	"CareLink/models"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository is the registry of doctor-patient links. Link rows are
// never cached: every access check re-reads the current permission map so a
// revocation takes effect on the next request.
type LinkRepository interface {
	Create(ctx context.Context, link *models.DoctorPatientLink) error
	Find(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error)
	FindByShareCode(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error)
	UpdatePermissions(ctx context.Context, linkID string, permissions models.PermissionSet) error
	ListByDoctor(ctx context.Context, doctorID string) ([]models.DoctorPatientLink, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.DoctorPatientLink, error)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

// Create inserts a new link. The composite unique index on
// (doctor_id, patient_id) closes the race between two concurrent creations
// for the same pair; a violation surfaces as ErrAlreadyLinked.
func (r *linkRepository) Create(ctx context.Context, link *models.DoctorPatientLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyLinked
		}
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

func (r *linkRepository) Find(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
	var link models.DoctorPatientLink
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotLinked
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return &link, nil
}

// FindByShareCode resolves a pending one-time share code. A spent code has
// been cleared to NULL and no longer resolves, so redeeming it twice yields
// ErrInvalidCode.
func (r *linkRepository) FindByShareCode(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
	var link models.DoctorPatientLink
	err := r.db.WithContext(ctx).Where("share_code = ?", shareCode).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to resolve share code: %w", err)
	}
	return &link, nil
}

func (r *linkRepository) UpdatePermissions(ctx context.Context, linkID string, permissions models.PermissionSet) error {
	result := r.db.WithContext(ctx).
		Model(&models.DoctorPatientLink{}).
		Where("id = ?", linkID).
		Update("permissions", permissions)
	if result.Error != nil {
		return fmt.Errorf("failed to update link permissions: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *linkRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.DoctorPatientLink, error) {
	var links []models.DoctorPatientLink
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list links by doctor: %w", err)
	}
	return links, nil
}

func (r *linkRepository) ListByPatient(ctx context.Context, patientID string) ([]models.DoctorPatientLink, error) {
	var links []models.DoctorPatientLink
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list links by patient: %w", err)
	}
	return links, nil
}
