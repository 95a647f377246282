package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMigrationRepo struct {
	claim func(ctx context.Context, shareCode, realUserID string) error
}

func (s *stubMigrationRepo) Claim(ctx context.Context, shareCode, realUserID string) error {
	return s.claim(ctx, shareCode, realUserID)
}

// shadowUserRepo resolves every ID to an unclaimed shadow identity.
func shadowUserRepo() *stubUserRepo {
	return &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "Ama Owusu", Role: models.RolePatient}, nil
		},
	}
}

func TestClaimInvalidCode(t *testing.T) {
	links := &stubLinkRepo{
		findByShareCode: func(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
			return nil, repositories.ErrInvalidCode
		},
	}
	migrations := &stubMigrationRepo{
		claim: func(ctx context.Context, shareCode, realUserID string) error {
			t.Fatal("migration should not run for an invalid code")
			return nil
		},
	}

	service := NewMigrationService(links, shadowUserRepo(), migrations)
	_, err := service.Claim(context.Background(), "BADCODE1", "user1")
	assert.ErrorIs(t, err, repositories.ErrInvalidCode)
}

func TestClaimSelfIsNoOp(t *testing.T) {
	links := &stubLinkRepo{
		findByShareCode: func(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
			return &models.DoctorPatientLink{ID: "link1", DoctorID: "doc1", PatientID: "user1"}, nil
		},
	}
	migrations := &stubMigrationRepo{
		claim: func(ctx context.Context, shareCode, realUserID string) error {
			t.Fatal("claiming your own link should not migrate anything")
			return nil
		},
	}

	service := NewMigrationService(links, shadowUserRepo(), migrations)
	result, err := service.Claim(context.Background(), "CODE1234", "user1")
	require.NoError(t, err)
	assert.True(t, result.AlreadyLinked)
}

func TestClaimRefusesCredentialedAccount(t *testing.T) {
	email := "victim@example.com"
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	links := &stubLinkRepo{
		findByShareCode: func(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
			return &models.DoctorPatientLink{ID: "link1", DoctorID: "doc1", PatientID: "victim1"}, nil
		},
	}
	users := &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Email: &email, PasswordHash: &hash, Role: models.RolePatient}, nil
		},
	}
	migrations := &stubMigrationRepo{
		claim: func(ctx context.Context, shareCode, realUserID string) error {
			t.Fatal("a code pointing at a credentialed account must never migrate")
			return nil
		},
	}

	service := NewMigrationService(links, users, migrations)
	_, err := service.Claim(context.Background(), "CODE1234", "attacker1")
	assert.ErrorIs(t, err, repositories.ErrInvalidCode)
}

func TestClaimConflictingLink(t *testing.T) {
	links := &stubLinkRepo{
		findByShareCode: func(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
			return &models.DoctorPatientLink{ID: "link1", DoctorID: "doc1", PatientID: "shadow1"}, nil
		},
	}
	migrations := &stubMigrationRepo{
		claim: func(ctx context.Context, shareCode, realUserID string) error {
			return repositories.ErrAlreadyLinked
		},
	}

	service := NewMigrationService(links, shadowUserRepo(), migrations)
	_, err := service.Claim(context.Background(), "CODE1234", "user1")
	assert.ErrorIs(t, err, repositories.ErrAlreadyLinked)
}

func TestClaimSuccess(t *testing.T) {
	var claimedCode, claimedUser string
	links := &stubLinkRepo{
		findByShareCode: func(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
			return &models.DoctorPatientLink{ID: "link1", DoctorID: "doc1", PatientID: "shadow1"}, nil
		},
	}
	migrations := &stubMigrationRepo{
		claim: func(ctx context.Context, shareCode, realUserID string) error {
			claimedCode = shareCode
			claimedUser = realUserID
			return nil
		},
	}

	service := NewMigrationService(links, shadowUserRepo(), migrations)
	result, err := service.Claim(context.Background(), "CODE1234", "user1")
	require.NoError(t, err)
	assert.False(t, result.AlreadyLinked)
	assert.Equal(t, "CODE1234", claimedCode)
	assert.Equal(t, "user1", claimedUser)
}
