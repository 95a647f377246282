package repositories

import (
	"CareLink/cache"
	"CareLink/database"
	"CareLink/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MigrationRepository performs the shadow-to-real identity merge. The whole
// transition is one database transaction: either every category's rows move,
// the link is repointed and the shadow user is gone, or nothing changed.
type MigrationRepository interface {
	Claim(ctx context.Context, shareCode, realUserID string) error
}

type migrationRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMigrationRepository(db *gorm.DB, cache *cache.Cache) MigrationRepository {
	return &migrationRepository{db: db, cache: cache}
}

// Claim migrates everything the shadow patient owns to realUserID. The link
// row is re-resolved inside the transaction with a row lock, so two
// concurrent claims of the same code serialize: the loser re-reads a cleared
// share code and gets ErrInvalidCode. The Redis lock shortens the window in
// which the loser holds a transaction open; the row lock is the guarantee.
func (r *migrationRepository) Claim(ctx context.Context, shareCode, realUserID string) error {
	lockKey := fmt.Sprintf("claim_lock:%s", shareCode)
	return database.WithLock(ctx, lockKey, 30*time.Second, func() error {
		var shadowID string

		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var link models.DoctorPatientLink
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("share_code = ?", shareCode).
				First(&link).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidCode
				}
				return fmt.Errorf("failed to resolve share code: %w", err)
			}

			// Idempotency guard: the link already points at the claimant.
			if link.PatientID == realUserID {
				return nil
			}
			shadowID = link.PatientID

			// Re-checked under the row lock: a share code must never move
			// records off a credentialed account.
			var shadowUser models.User
			if err := tx.First(&shadowUser, "id = ?", shadowID).Error; err != nil {
				return fmt.Errorf("failed to load shadow user: %w", err)
			}
			if !shadowUser.IsShadow() {
				return ErrInvalidCode
			}

			var realUser models.User
			if err := tx.First(&realUser, "id = ?", realUserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return fmt.Errorf("failed to load claiming user: %w", err)
			}

			// A second link for (doctor, claimant) would collide with the
			// composite unique index when the link is repointed.
			var existing int64
			err = tx.Model(&models.DoctorPatientLink{}).
				Where("doctor_id = ? AND patient_id = ?", link.DoctorID, realUserID).
				Count(&existing).Error
			if err != nil {
				return fmt.Errorf("failed to check for existing link: %w", err)
			}
			if existing > 0 {
				return ErrAlreadyLinked
			}

			// medical_histories holds one row per patient. When the
			// claimant already wrote their own history, the bulk repoint
			// below would collide with that unique index; the claimant's
			// row wins and the shadow's is dropped.
			var claimantHistory int64
			err = tx.Model(&models.MedicalHistory{}).
				Where("patient_id = ?", realUserID).
				Count(&claimantHistory).Error
			if err != nil {
				return fmt.Errorf("failed to check for existing history: %w", err)
			}
			if claimantHistory > 0 {
				err := tx.Where("patient_id = ?", shadowID).
					Delete(&models.MedicalHistory{}).Error
				if err != nil {
					return fmt.Errorf("failed to drop superseded history: %w", err)
				}
			}

			// Bulk ownership reassignment, every category in this one
			// transaction. Row-by-row copies would leave a window where some
			// categories have moved and others have not.
			reassignments := []struct {
				model interface{}
				name  string
			}{
				{&models.HealthLog{}, "health logs"},
				{&models.Medication{}, "medications"},
				{&models.MedicalReport{}, "reports"},
				{&models.DietPlan{}, "diet plans"},
				{&models.MedicalHistory{}, "medical history"},
				{&models.Consultation{}, "consultations"},
			}
			for _, reassignment := range reassignments {
				err := tx.Model(reassignment.model).
					Where("patient_id = ?", shadowID).
					Update("patient_id", realUserID).Error
				if err != nil {
					return fmt.Errorf("failed to reassign %s: %w", reassignment.name, err)
				}
			}

			// Repoint the link and spend the code permanently.
			err = tx.Model(&models.DoctorPatientLink{}).
				Where("id = ?", link.ID).
				Updates(map[string]interface{}{
					"patient_id": realUserID,
					"share_code": nil,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to repoint link: %w", err)
			}

			// Terminal step: the shadow identity is retired.
			if err := tx.Delete(&models.User{}, "id = ?", shadowID).Error; err != nil {
				return fmt.Errorf("failed to delete shadow user: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if shadowID != "" {
			r.invalidateMigratedCaches(ctx, shadowID, realUserID)
		}
		return nil
	})
}

// invalidateMigratedCaches drops every cached view of both identities after
// a successful migration. Cache cleanup is best effort; entries expire on
// their own if Redis is unreachable here.
func (r *migrationRepository) invalidateMigratedCaches(ctx context.Context, shadowID, realUserID string) {
	keys := []string{
		userCacheKey(shadowID),
		userCacheKey(realUserID),
	}
	for _, patientID := range []string{shadowID, realUserID} {
		keys = append(keys,
			healthLogCacheKey(patientID),
			medicationCacheKey(patientID, false),
			medicationCacheKey(patientID, true),
			reportCacheKey(patientID),
			dietPlanCacheKey(patientID),
			medicalHistoryCacheKey(patientID),
			consultationCacheKey(patientID),
		)
	}
	if err := r.cache.DeleteBatch(ctx, keys...); err != nil {
		log.Printf("Failed to invalidate caches after migration: %v", err)
	}
}
