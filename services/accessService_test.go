package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// stubLinkRepo satisfies repositories.LinkRepository with per-method
// overrides so each test controls exactly the calls it expects.
type stubLinkRepo struct {
	create            func(ctx context.Context, link *models.DoctorPatientLink) error
	find              func(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error)
	findByShareCode   func(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error)
	updatePermissions func(ctx context.Context, linkID string, permissions models.PermissionSet) error
	listByDoctor      func(ctx context.Context, doctorID string) ([]models.DoctorPatientLink, error)
	listByPatient     func(ctx context.Context, patientID string) ([]models.DoctorPatientLink, error)
}

func (s *stubLinkRepo) Create(ctx context.Context, link *models.DoctorPatientLink) error {
	return s.create(ctx, link)
}

func (s *stubLinkRepo) Find(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
	return s.find(ctx, doctorID, patientID)
}

func (s *stubLinkRepo) FindByShareCode(ctx context.Context, shareCode string) (*models.DoctorPatientLink, error) {
	return s.findByShareCode(ctx, shareCode)
}

func (s *stubLinkRepo) UpdatePermissions(ctx context.Context, linkID string, permissions models.PermissionSet) error {
	return s.updatePermissions(ctx, linkID, permissions)
}

func (s *stubLinkRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.DoctorPatientLink, error) {
	return s.listByDoctor(ctx, doctorID)
}

func (s *stubLinkRepo) ListByPatient(ctx context.Context, patientID string) ([]models.DoctorPatientLink, error) {
	return s.listByPatient(ctx, patientID)
}

func TestCanAccessOwner(t *testing.T) {
	assert.True(t, CanAccess("u1", "u1", models.CategoryHealthLogs, nil))
}

func TestCanAccessNoLink(t *testing.T) {
	assert.False(t, CanAccess("doc1", "pat1", models.CategoryHealthLogs, nil))
}

func TestCanAccessLinkedDefaultAllow(t *testing.T) {
	link := &models.DoctorPatientLink{DoctorID: "doc1", PatientID: "pat1"}

	for _, category := range models.Categories() {
		assert.True(t, CanAccess("doc1", "pat1", category, link))
	}
}

func TestCanAccessRevokedCategory(t *testing.T) {
	link := &models.DoctorPatientLink{
		DoctorID:    "doc1",
		PatientID:   "pat1",
		Permissions: models.PermissionSet{Reports: boolPtr(false)},
	}

	assert.False(t, CanAccess("doc1", "pat1", models.CategoryReports, link))
	assert.True(t, CanAccess("doc1", "pat1", models.CategoryMedications, link))
}

func TestCanAccessForeignLink(t *testing.T) {
	link := &models.DoctorPatientLink{DoctorID: "doc2", PatientID: "pat1"}
	assert.False(t, CanAccess("doc1", "pat1", models.CategoryHealthLogs, link))
}

func TestAuthorizeSelfSkipsLookup(t *testing.T) {
	authorizer := NewAuthorizer(&stubLinkRepo{
		find: func(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
			t.Fatal("self-access should not query the link registry")
			return nil, nil
		},
	})

	require.NoError(t, authorizer.Authorize(context.Background(), "u1", "u1", models.CategoryHealthLogs))
}

func TestAuthorizeNotLinked(t *testing.T) {
	authorizer := NewAuthorizer(&stubLinkRepo{
		find: func(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
			return nil, repositories.ErrNotLinked
		},
	})

	err := authorizer.Authorize(context.Background(), "doc1", "pat1", models.CategoryHealthLogs)
	assert.ErrorIs(t, err, repositories.ErrNotLinked)
}

func TestAuthorizeRevokedCategory(t *testing.T) {
	authorizer := NewAuthorizer(&stubLinkRepo{
		find: func(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
			return &models.DoctorPatientLink{
				DoctorID:    doctorID,
				PatientID:   patientID,
				Permissions: models.PermissionSet{DietPlans: boolPtr(false)},
			}, nil
		},
	})

	err := authorizer.Authorize(context.Background(), "doc1", "pat1", models.CategoryDietPlans)
	assert.ErrorIs(t, err, repositories.ErrNotAuthorized)

	require.NoError(t, authorizer.Authorize(context.Background(), "doc1", "pat1", models.CategoryHealthLogs))
}
