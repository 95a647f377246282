package repositories

import (
	"CareLink/cache"
	"CareLink/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMedicationRepository(db *gorm.DB, cache *cache.Cache) *MedicationRepository {
	return &MedicationRepository{db: db, cache: cache}
}

func (r *MedicationRepository) Create(ctx context.Context, med *models.Medication) error {
	if med.ID == "" {
		med.ID = uuid.New().String()
	}
	med.Active = true
	if err := r.db.WithContext(ctx).Create(med).Error; err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}
	return r.InvalidatePatient(ctx, med.PatientID)
}

func (r *MedicationRepository) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	var med models.Medication
	err := r.db.WithContext(ctx).First(&med, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}
	return &med, nil
}

// ListByPatient returns the patient's medications. The default view filters
// to active prescriptions; includeInactive widens it to the full history.
func (r *MedicationRepository) ListByPatient(ctx context.Context, patientID string, includeInactive bool) ([]models.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := medicationCacheKey(patientID, includeInactive)
	var cached []models.Medication
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get medications from cache: %v", err)
	}

	query := r.db.WithContext(ctx).Where("patient_id = ?", patientID)
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var meds []models.Medication
	if err := query.Order("created_at DESC").Find(&meds).Error; err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, meds, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set medications in cache: %v", err)
	}
	return meds, nil
}

func (r *MedicationRepository) Update(ctx context.Context, med *models.Medication) error {
	if err := r.db.WithContext(ctx).Save(med).Error; err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}
	return r.InvalidatePatient(ctx, med.PatientID)
}

// Deactivate is the soft delete: the row stays on record with active=false.
func (r *MedicationRepository) Deactivate(ctx context.Context, id, patientID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Medication{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate medication: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

func (r *MedicationRepository) Delete(ctx context.Context, id, patientID string) error {
	result := r.db.WithContext(ctx).Delete(&models.Medication{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medication: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

func (r *MedicationRepository) InvalidatePatient(ctx context.Context, patientID string) error {
	return r.cache.DeleteBatch(ctx,
		medicationCacheKey(patientID, false),
		medicationCacheKey(patientID, true),
	)
}

func medicationCacheKey(patientID string, includeInactive bool) string {
	if includeInactive {
		return fmt.Sprintf("medications_cache:%s:all", patientID)
	}
	return fmt.Sprintf("medications_cache:%s:active", patientID)
}
