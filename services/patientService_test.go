package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterByDoctorRejectsNonDoctor(t *testing.T) {
	users := &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: models.RolePatient}, nil
		},
	}

	service := NewPatientService(users, &stubLinkRepo{})
	_, err := service.RegisterByDoctor(context.Background(), "pat1", PatientRegistrationInput{Name: "Ama"})
	assert.ErrorIs(t, err, repositories.ErrNotAuthorized)
}

func TestRegisterByDoctorRejectsMissingName(t *testing.T) {
	service := NewPatientService(&stubUserRepo{}, &stubLinkRepo{})
	_, err := service.RegisterByDoctor(context.Background(), "doc1", PatientRegistrationInput{})
	assert.Error(t, err)
}

func TestRegisterByDoctorLinksExistingAccount(t *testing.T) {
	users := &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleDoctor}, nil
		},
		getByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "existing1", Role: models.RolePatient}, nil
		},
	}

	var created *models.DoctorPatientLink
	links := &stubLinkRepo{
		create: func(ctx context.Context, link *models.DoctorPatientLink) error {
			created = link
			return nil
		},
	}

	service := NewPatientService(users, links)
	result, err := service.RegisterByDoctor(context.Background(), "doc1", PatientRegistrationInput{
		Name:  "Ama Owusu",
		Email: "ama@example.com",
	})
	require.NoError(t, err)

	assert.True(t, result.LinkedExisting)
	assert.Equal(t, "existing1", result.PatientID)
	assert.Empty(t, result.ShareCode, "linking an existing account needs no migration token")
	assert.Empty(t, result.TempPassword)

	require.NotNil(t, created)
	assert.Equal(t, "doc1", created.DoctorID)
	assert.Equal(t, "existing1", created.PatientID)
	assert.Nil(t, created.ShareCode)
}

func TestRegisterByDoctorExistingLinkConflict(t *testing.T) {
	users := &stubUserRepo{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleDoctor}, nil
		},
		getByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "existing1", Role: models.RolePatient}, nil
		},
	}
	links := &stubLinkRepo{
		create: func(ctx context.Context, link *models.DoctorPatientLink) error {
			return repositories.ErrAlreadyLinked
		},
	}

	service := NewPatientService(users, links)
	_, err := service.RegisterByDoctor(context.Background(), "doc1", PatientRegistrationInput{
		Name:  "Ama Owusu",
		Email: "ama@example.com",
	})
	assert.ErrorIs(t, err, repositories.ErrAlreadyLinked)
}
