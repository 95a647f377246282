package services

import (
	"CareLink/database"
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// PatientService handles doctor-initiated patient registration: the
// standard flow (email given, full account with a temporary password) and
// the shadow flow (no email, unclaimed identity behind a share code).
type PatientService interface {
	RegisterByDoctor(ctx context.Context, doctorID string, input PatientRegistrationInput) (*PatientRegistrationResult, error)
}

type PatientRegistrationInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Phone string `json:"phone"`
}

type PatientRegistrationResult struct {
	PatientID      string `json:"patient_id"`
	ShareCode      string `json:"share_code,omitempty"`
	TempPassword   string `json:"temp_password,omitempty"`
	LinkedExisting bool   `json:"linked_existing"`
}

type patientService struct {
	users repositories.UserRepository
	links repositories.LinkRepository
}

func NewPatientService(users repositories.UserRepository, links repositories.LinkRepository) PatientService {
	return &patientService{users: users, links: links}
}

func (s *patientService) RegisterByDoctor(ctx context.Context, doctorID string, input PatientRegistrationInput) (*PatientRegistrationResult, error) {
	if err := utils.ValidatePatientRegistration(input.Name, input.Email); err != nil {
		return nil, fmt.Errorf("invalid patient data: %w", err)
	}

	doctor, err := s.users.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Role != models.RoleDoctor {
		return nil, repositories.ErrNotAuthorized
	}

	// An existing account is linked directly; no identity is created and no
	// share code is needed since there is nothing to migrate.
	if input.Email != "" {
		existing, err := s.users.GetByEmail(ctx, input.Email)
		if err == nil {
			if err := s.links.Create(ctx, &models.DoctorPatientLink{
				DoctorID:  doctorID,
				PatientID: existing.ID,
			}); err != nil {
				return nil, err
			}
			utils.Audit(utils.AuditEvent{
				Actor: doctorID, Action: "link_patient", Resource: "user:" + existing.ID, Status: "success",
			})
			return &PatientRegistrationResult{PatientID: existing.ID, LinkedExisting: true}, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	var result *PatientRegistrationResult
	lockKey := fmt.Sprintf("register_patient_lock:%s:%s:%s", doctorID, input.Name, input.Email)
	err = database.WithLock(ctx, lockKey, 30*time.Second, func() error {
		patient := &models.User{
			Name:  input.Name,
			Age:   input.Age,
			Role:  models.RolePatient,
			Phone: input.Phone,
		}

		var tempPassword string
		if input.Email != "" {
			tempPassword, err = utils.GenerateTempPassword()
			if err != nil {
				return err
			}
			hashed, err := utils.HashPassword(tempPassword)
			if err != nil {
				return err
			}
			patient.Email = &input.Email
			patient.PasswordHash = &hashed
		}

		if err := s.users.Create(ctx, patient); err != nil {
			return err
		}

		// Only a shadow identity carries a share code: the code exists to
		// migrate records onto a real account later, and a credentialed
		// patient has nothing to claim.
		var shareCode string
		link := &models.DoctorPatientLink{
			DoctorID:  doctorID,
			PatientID: patient.ID,
		}
		if patient.IsShadow() {
			shareCode, err = utils.GenerateShareCode()
			if err != nil {
				return err
			}
			link.ShareCode = &shareCode
		}
		if err := s.links.Create(ctx, link); err != nil {
			return err
		}

		if input.Email != "" {
			if err := utils.SendWelcomeEmail(input.Email, input.Name, tempPassword); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", input.Email, err)
			}
		}

		result = &PatientRegistrationResult{
			PatientID:    patient.ID,
			ShareCode:    shareCode,
			TempPassword: tempPassword,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Audit(utils.AuditEvent{
		Actor: doctorID, Action: "register_patient", Resource: "user:" + result.PatientID, Status: "success",
		Details: fmt.Sprintf("shadow=%t", input.Email == ""),
	})
	return result, nil
}
