package services

import (
	"CareLink/repositories"
	"CareLink/utils"
	"context"
)

// MigrationService drives the share-code claim that merges a shadow
// identity's records into the claiming patient's account.
type MigrationService interface {
	Claim(ctx context.Context, shareCode, realUserID string) (*ClaimResult, error)
}

// ClaimResult distinguishes a fresh migration from the idempotent case where
// the link already pointed at the claimant.
type ClaimResult struct {
	AlreadyLinked bool `json:"already_linked"`
}

type migrationService struct {
	links      repositories.LinkRepository
	users      repositories.UserRepository
	migrations repositories.MigrationRepository
}

func NewMigrationService(links repositories.LinkRepository, users repositories.UserRepository, migrations repositories.MigrationRepository) MigrationService {
	return &migrationService{links: links, users: users, migrations: migrations}
}

// Claim validates the share code, short-circuits the self-claim no-op, and
// otherwise runs the atomic migration. The repository re-validates the code
// inside its transaction, so these pre-checks only shape the caller-facing
// outcome; they are not the concurrency guarantee.
func (s *migrationService) Claim(ctx context.Context, shareCode, realUserID string) (*ClaimResult, error) {
	link, err := s.links.FindByShareCode(ctx, shareCode)
	if err != nil {
		utils.Audit(utils.AuditEvent{
			Actor: realUserID, Action: "claim_share_code", Resource: "share_code", Status: "failed",
			Details: "code did not resolve",
		})
		return nil, err
	}

	if link.PatientID == realUserID {
		return &ClaimResult{AlreadyLinked: true}, nil
	}

	// A code may only ever point at a shadow identity. Honoring one against
	// a credentialed account would hand that account's records to the
	// caller and delete the account, so the code is treated as dead.
	current, err := s.users.GetByID(ctx, link.PatientID)
	if err != nil {
		return nil, err
	}
	if !current.IsShadow() {
		utils.Audit(utils.AuditEvent{
			Actor: realUserID, Action: "claim_share_code", Resource: "link:" + link.ID, Status: "failed",
			Details: "code does not point at a shadow identity",
		})
		return nil, repositories.ErrInvalidCode
	}

	if err := s.migrations.Claim(ctx, shareCode, realUserID); err != nil {
		utils.Audit(utils.AuditEvent{
			Actor: realUserID, Action: "claim_share_code", Resource: "link:" + link.ID, Status: "failed",
			Details: err.Error(),
		})
		return nil, err
	}

	utils.Audit(utils.AuditEvent{
		Actor: realUserID, Action: "claim_share_code", Resource: "link:" + link.ID, Status: "success",
	})
	return &ClaimResult{}, nil
}
