package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	create      func(ctx context.Context, user *models.User) error
	getByID     func(ctx context.Context, id string) (*models.User, error)
	getByEmail  func(ctx context.Context, email string) (*models.User, error)
	emailExists func(ctx context.Context, email string) (bool, error)
	deleteCache func(ctx context.Context, id string) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.emailExists(ctx, email)
}

func (s *stubUserRepo) DeleteCache(ctx context.Context, id string) error {
	return s.deleteCache(ctx, id)
}

type stubProfileRepo struct {
	create          func(ctx context.Context, profile *models.DoctorProfile) error
	getByUserID     func(ctx context.Context, userID string) (*models.DoctorProfile, error)
	getByInviteCode func(ctx context.Context, inviteCode string) (*models.DoctorProfile, error)
}

func (s *stubProfileRepo) Create(ctx context.Context, profile *models.DoctorProfile) error {
	return s.create(ctx, profile)
}

func (s *stubProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	return s.getByUserID(ctx, userID)
}

func (s *stubProfileRepo) GetByInviteCode(ctx context.Context, inviteCode string) (*models.DoctorProfile, error) {
	return s.getByInviteCode(ctx, inviteCode)
}

func TestLinkViaInviteInvalidCode(t *testing.T) {
	profiles := &stubProfileRepo{
		getByInviteCode: func(ctx context.Context, inviteCode string) (*models.DoctorProfile, error) {
			return nil, repositories.ErrInvalidCode
		},
	}

	service := NewLinkService(&stubLinkRepo{}, &stubUserRepo{}, profiles)
	_, err := service.LinkViaInvite(context.Background(), "pat1", "NOPE")
	assert.ErrorIs(t, err, repositories.ErrInvalidCode)
}

func TestLinkViaInviteSuccess(t *testing.T) {
	var created *models.DoctorPatientLink
	links := &stubLinkRepo{
		create: func(ctx context.Context, link *models.DoctorPatientLink) error {
			created = link
			return nil
		},
	}
	users := &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "Dr. Mensah", Role: models.RoleDoctor}, nil
		},
	}
	profiles := &stubProfileRepo{
		getByInviteCode: func(ctx context.Context, inviteCode string) (*models.DoctorProfile, error) {
			return &models.DoctorProfile{UserID: "doc1", Specialization: "Cardiology", Hospital: "St. Mary"}, nil
		},
	}

	service := NewLinkService(links, users, profiles)
	doctor, err := service.LinkViaInvite(context.Background(), "pat1", "ABC234")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "doc1", created.DoctorID)
	assert.Equal(t, "pat1", created.PatientID)
	assert.Nil(t, created.ShareCode, "invite links carry no claim token")

	assert.Equal(t, "Dr. Mensah", doctor.Name)
	assert.Equal(t, "Cardiology", doctor.Specialization)
}

func TestLinkViaInviteDuplicate(t *testing.T) {
	links := &stubLinkRepo{
		create: func(ctx context.Context, link *models.DoctorPatientLink) error {
			return repositories.ErrAlreadyLinked
		},
	}
	profiles := &stubProfileRepo{
		getByInviteCode: func(ctx context.Context, inviteCode string) (*models.DoctorProfile, error) {
			return &models.DoctorProfile{UserID: "doc1"}, nil
		},
	}

	service := NewLinkService(links, &stubUserRepo{}, profiles)
	_, err := service.LinkViaInvite(context.Background(), "pat1", "ABC234")
	assert.ErrorIs(t, err, repositories.ErrAlreadyLinked)
}

func TestSetPermissionsNotLinked(t *testing.T) {
	links := &stubLinkRepo{
		find: func(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
			return nil, repositories.ErrNotLinked
		},
	}

	service := NewLinkService(links, &stubUserRepo{}, &stubProfileRepo{})
	err := service.SetPermissions(context.Background(), "pat1", "doc1", models.PermissionSet{})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSetPermissionsSuccess(t *testing.T) {
	var updatedID string
	var updated models.PermissionSet
	links := &stubLinkRepo{
		find: func(ctx context.Context, doctorID, patientID string) (*models.DoctorPatientLink, error) {
			return &models.DoctorPatientLink{ID: "link1", DoctorID: doctorID, PatientID: patientID}, nil
		},
		updatePermissions: func(ctx context.Context, linkID string, permissions models.PermissionSet) error {
			updatedID = linkID
			updated = permissions
			return nil
		},
	}

	service := NewLinkService(links, &stubUserRepo{}, &stubProfileRepo{})
	err := service.SetPermissions(context.Background(), "pat1", "doc1", models.PermissionSet{Reports: boolPtr(false)})
	require.NoError(t, err)

	assert.Equal(t, "link1", updatedID)
	assert.False(t, updated.Allows(models.CategoryReports))
	assert.True(t, updated.Allows(models.CategoryHealthLogs))
}

func TestMyDoctorsHidesShareCodes(t *testing.T) {
	code := "CODE1234"
	links := &stubLinkRepo{
		listByPatient: func(ctx context.Context, patientID string) ([]models.DoctorPatientLink, error) {
			return []models.DoctorPatientLink{
				{ID: "link1", DoctorID: "doc1", PatientID: patientID, ShareCode: &code},
			}, nil
		},
	}
	users := &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "Dr. Mensah"}, nil
		},
	}
	profiles := &stubProfileRepo{
		getByUserID: func(ctx context.Context, userID string) (*models.DoctorProfile, error) {
			return &models.DoctorProfile{UserID: userID, Specialization: "Cardiology"}, nil
		},
	}

	service := NewLinkService(links, users, profiles)
	doctors, err := service.MyDoctors(context.Background(), "pat1")
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Mensah", doctors[0].Name)
}
