package services

import (
	"CareLink/database"
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

// AuthService covers self-service registration and login. Token issuance
// stays in the handler layer; this service only resolves identities.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, *models.DoctorProfile, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetDoctorProfile(ctx context.Context, userID string) (*models.DoctorProfile, error)
}

type RegisterInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Age            int    `json:"age"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
}

type authService struct {
	users    repositories.UserRepository
	profiles repositories.DoctorProfileRepository
}

func NewAuthService(users repositories.UserRepository, profiles repositories.DoctorProfileRepository) AuthService {
	return &authService{users: users, profiles: profiles}
}

// Register creates a full (non-shadow) identity. Doctor registrations also
// create the profile carrying the persistent invite code.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, *models.DoctorProfile, error) {
	if err := utils.ValidateRegistration(utils.RegistrationInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	}); err != nil {
		return nil, nil, fmt.Errorf("invalid registration data: %w", err)
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        &input.Email,
		PasswordHash: &hashedPassword,
		Age:          input.Age,
		Role:         input.Role,
		Phone:        input.Phone,
	}

	var profile *models.DoctorProfile
	lockKey := fmt.Sprintf("register_lock:%s", input.Email)
	err = database.WithLock(ctx, lockKey, 30*time.Second, func() error {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}

		if input.Role == models.RoleDoctor {
			inviteCode, err := utils.GenerateInviteCode()
			if err != nil {
				return err
			}
			profile = &models.DoctorProfile{
				UserID:         user.ID,
				Specialization: input.Specialization,
				Hospital:       input.Hospital,
				Available:      true,
				InviteCode:     inviteCode,
			}
			if err := s.profiles.Create(ctx, profile); err != nil {
				return fmt.Errorf("failed to create doctor profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	utils.Audit(utils.AuditEvent{
		Actor: user.ID, Action: "register", Resource: "user:" + user.ID, Status: "success",
		Details: "role=" + user.Role,
	})
	return user, profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}

	// Shadow identities have no credential and can never log in directly.
	if user.PasswordHash == nil || !utils.CheckPassword(*user.PasswordHash, password) {
		utils.Audit(utils.AuditEvent{
			Actor: user.ID, Action: "login", Resource: "user:" + user.ID, Status: "failed",
		})
		return nil, errors.New("invalid email or password")
	}

	utils.Audit(utils.AuditEvent{
		Actor: user.ID, Action: "login", Resource: "user:" + user.ID, Status: "success",
	})
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *authService) GetDoctorProfile(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}
