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

type DietPlanRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDietPlanRepository(db *gorm.DB, cache *cache.Cache) *DietPlanRepository {
	return &DietPlanRepository{db: db, cache: cache}
}

func (r *DietPlanRepository) Create(ctx context.Context, plan *models.DietPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create diet plan: %w", err)
	}
	return r.InvalidatePatient(ctx, plan.PatientID)
}

func (r *DietPlanRepository) GetByID(ctx context.Context, id string) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get diet plan: %w", err)
	}
	return &plan, nil
}

func (r *DietPlanRepository) ListByPatient(ctx context.Context, patientID string) ([]models.DietPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := dietPlanCacheKey(patientID)
	var cached []models.DietPlan
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get diet plans from cache: %v", err)
	}

	var plans []models.DietPlan
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, plans, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set diet plans in cache: %v", err)
	}
	return plans, nil
}

func (r *DietPlanRepository) Update(ctx context.Context, plan *models.DietPlan) error {
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return fmt.Errorf("failed to update diet plan: %w", err)
	}
	return r.InvalidatePatient(ctx, plan.PatientID)
}

func (r *DietPlanRepository) Delete(ctx context.Context, id, patientID string) error {
	result := r.db.WithContext(ctx).Delete(&models.DietPlan{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete diet plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.InvalidatePatient(ctx, patientID)
}

func (r *DietPlanRepository) InvalidatePatient(ctx context.Context, patientID string) error {
	return r.cache.Delete(ctx, dietPlanCacheKey(patientID))
}

func dietPlanCacheKey(patientID string) string {
	return fmt.Sprintf("diet_plans_cache:%s", patientID)
}
