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

type ReportRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewReportRepository(db *gorm.DB, cache *cache.Cache) *ReportRepository {
	return &ReportRepository{db: db, cache: cache}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.MedicalReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return r.InvalidatePatient(ctx, report.PatientID)
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.MedicalReport, error) {
	var report models.MedicalReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// ListByPatient omits the file payload; clients fetch a single report by ID
// when they need the embedded file.
func (r *ReportRepository) ListByPatient(ctx context.Context, patientID string) ([]models.MedicalReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := reportCacheKey(patientID)
	var cached []models.MedicalReport
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get reports from cache: %v", err)
	}

	var reports []models.MedicalReport
	err := r.db.WithContext(ctx).
		Select("id, patient_id, uploaded_by, title, report_type, notes, file_name, created_at").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, reports, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set reports in cache: %v", err)
	}
	return reports, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id, patientID string) error {
	result := r.db.WithContext(ctx).Delete(&models.MedicalReport{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

func (r *ReportRepository) InvalidatePatient(ctx context.Context, patientID string) error {
	return r.cache.Delete(ctx, reportCacheKey(patientID))
}

func reportCacheKey(patientID string) string {
	return fmt.Sprintf("reports_cache:%s", patientID)
}
