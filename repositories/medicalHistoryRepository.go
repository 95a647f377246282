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
	"gorm.io/gorm/clause"
)

type MedicalHistoryRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMedicalHistoryRepository(db *gorm.DB, cache *cache.Cache) *MedicalHistoryRepository {
	return &MedicalHistoryRepository{db: db, cache: cache}
}

// Upsert writes the patient's single history row, creating it on first write
// and updating it in place afterwards.
func (r *MedicalHistoryRepository) Upsert(ctx context.Context, history *models.MedicalHistory) error {
	if history.ID == "" {
		history.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"allergies", "chronic_conditions", "surgeries", "medications", "consulting_summary", "updated_at",
		}),
	}).Create(history).Error
	if err != nil {
		return fmt.Errorf("failed to upsert medical history: %w", err)
	}
	return r.InvalidatePatient(ctx, history.PatientID)
}

func (r *MedicalHistoryRepository) GetByPatient(ctx context.Context, patientID string) (*models.MedicalHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := medicalHistoryCacheKey(patientID)
	var cached models.MedicalHistory
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get medical history from cache: %v", err)
	}

	var history models.MedicalHistory
	err := r.db.WithContext(ctx).First(&history, "patient_id = ?", patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medical history: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, history, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set medical history in cache: %v", err)
	}
	return &history, nil
}

func (r *MedicalHistoryRepository) Delete(ctx context.Context, patientID string) error {
	result := r.db.WithContext(ctx).Delete(&models.MedicalHistory{}, "patient_id = ?", patientID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medical history: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

func (r *MedicalHistoryRepository) InvalidatePatient(ctx context.Context, patientID string) error {
	return r.cache.Delete(ctx, medicalHistoryCacheKey(patientID))
}

func medicalHistoryCacheKey(patientID string) string {
	return fmt.Sprintf("medical_history_cache:%s", patientID)
}
