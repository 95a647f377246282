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
	DoctorProfileCacheExpiry = 24 * time.Hour
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, profile *models.DoctorProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*models.DoctorProfile, error)
}

type doctorProfileRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorProfileRepository(db *gorm.DB, cache *cache.Cache) DoctorProfileRepository {
	return &doctorProfileRepository{db: db, cache: cache}
}

func (r *doctorProfileRepository) Create(ctx context.Context, profile *models.DoctorProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create doctor profile: %w", err)
	}
	return nil
}

func (r *doctorProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("doctor_profile_cache:%s", userID)
	var cached models.DoctorProfile
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get doctor profile from cache: %v", err)
	}

	var profile models.DoctorProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, profile, DoctorProfileCacheExpiry); err != nil {
		log.Printf("Failed to set doctor profile in cache: %v", err)
	}
	return &profile, nil
}

// GetByInviteCode resolves a persistent invite code to its doctor profile.
// Invite codes are long-lived and resolve any number of times; they are not
// the one-time share codes carried by links.
func (r *doctorProfileRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	err := r.db.WithContext(ctx).First(&profile, "invite_code = ?", inviteCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to resolve invite code: %w", err)
	}
	return &profile, nil
}
