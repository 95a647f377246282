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

const (
	RecordCacheExpiry = time.Hour
)

type HealthLogRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewHealthLogRepository(db *gorm.DB, cache *cache.Cache) *HealthLogRepository {
	return &HealthLogRepository{db: db, cache: cache}
}

func (r *HealthLogRepository) Create(ctx context.Context, logEntry *models.HealthLog) error {
	if logEntry.ID == "" {
		logEntry.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(logEntry).Error; err != nil {
		return fmt.Errorf("failed to create health log: %w", err)
	}
	return r.InvalidatePatient(ctx, logEntry.PatientID)
}

func (r *HealthLogRepository) GetByID(ctx context.Context, id string) (*models.HealthLog, error) {
	var logEntry models.HealthLog
	err := r.db.WithContext(ctx).First(&logEntry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get health log: %w", err)
	}
	return &logEntry, nil
}

func (r *HealthLogRepository) ListByPatient(ctx context.Context, patientID string) ([]models.HealthLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := healthLogCacheKey(patientID)
	var cached []models.HealthLog
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get health logs from cache: %v", err)
	}

	var logs []models.HealthLog
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("log_date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, logs, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set health logs in cache: %v", err)
	}
	return logs, nil
}

func (r *HealthLogRepository) Update(ctx context.Context, logEntry *models.HealthLog) error {
	if err := r.db.WithContext(ctx).Save(logEntry).Error; err != nil {
		return fmt.Errorf("failed to update health log: %w", err)
	}
	return r.InvalidatePatient(ctx, logEntry.PatientID)
}

func (r *HealthLogRepository) Delete(ctx context.Context, id, patientID string) error {
	result := r.db.WithContext(ctx).Delete(&models.HealthLog{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete health log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

// InvalidatePatient drops the patient's cached log list; the migrator calls
// it for both sides of a shadow claim.
func (r *HealthLogRepository) InvalidatePatient(ctx context.Context, patientID string) error {
	return r.cache.Delete(ctx, healthLogCacheKey(patientID))
}

func healthLogCacheKey(patientID string) string {
	return fmt.Sprintf("health_logs_cache:%s", patientID)
}
