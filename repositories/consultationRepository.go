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

type ConsultationRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewConsultationRepository(db *gorm.DB, cache *cache.Cache) *ConsultationRepository {
	return &ConsultationRepository{db: db, cache: cache}
}

func (r *ConsultationRepository) Create(ctx context.Context, consultation *models.Consultation) error {
	if consultation.ID == "" {
		consultation.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(consultation).Error; err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return r.InvalidatePatient(ctx, consultation.PatientID)
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.db.WithContext(ctx).First(&consultation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	return &consultation, nil
}

func (r *ConsultationRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := consultationCacheKey(patientID)
	var cached []models.Consultation
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get consultations from cache: %v", err)
	}

	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("visit_date DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, consultations, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set consultations in cache: %v", err)
	}
	return consultations, nil
}

// ListByDoctor is the doctor's own worklist view, uncached because it spans
// many patients and changes with every visit recorded.
func (r *ConsultationRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("visit_date DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations by doctor: %w", err)
	}
	return consultations, nil
}

func (r *ConsultationRepository) Update(ctx context.Context, consultation *models.Consultation) error {
	if err := r.db.WithContext(ctx).Save(consultation).Error; err != nil {
		return fmt.Errorf("failed to update consultation: %w", err)
	}
	return r.InvalidatePatient(ctx, consultation.PatientID)
}

func (r *ConsultationRepository) Delete(ctx context.Context, id, patientID string) error {
	result := r.db.WithContext(ctx).Delete(&models.Consultation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete consultation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

func (r *ConsultationRepository) InvalidatePatient(ctx context.Context, patientID string) error {
	return r.cache.Delete(ctx, consultationCacheKey(patientID))
}

func consultationCacheKey(patientID string) string {
	return fmt.Sprintf("consultations_cache:%s", patientID)
}
