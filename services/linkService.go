package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"CareLink/utils"
	"context"
	"errors"
	"fmt"
)

// LinkService manages the link registry from both sides of the relationship.
type LinkService interface {
	LinkViaInvite(ctx context.Context, patientID, inviteCode string) (*LinkedDoctor, error)
	SetPermissions(ctx context.Context, patientID, doctorID string, permissions models.PermissionSet) error
	MyDoctors(ctx context.Context, patientID string) ([]LinkedDoctor, error)
	MyPatients(ctx context.Context, doctorID string) ([]LinkedPatient, error)
}

// LinkedDoctor is the patient-side view of a link. It never exposes the
// share code; that token belongs to the doctor until claimed.
type LinkedDoctor struct {
	DoctorID       string               `json:"doctor_id"`
	Name           string               `json:"name"`
	Specialization string               `json:"specialization,omitempty"`
	Hospital       string               `json:"hospital,omitempty"`
	Permissions    models.PermissionSet `json:"permissions"`
}

// LinkedPatient is the doctor-side view of a link, including the pending
// share code for a still-unclaimed shadow patient.
type LinkedPatient struct {
	PatientID string  `json:"patient_id"`
	Name      string  `json:"name"`
	Age       int     `json:"age,omitempty"`
	Shadow    bool    `json:"shadow"`
	ShareCode *string `json:"share_code,omitempty"`
}

type linkService struct {
	links    repositories.LinkRepository
	users    repositories.UserRepository
	profiles repositories.DoctorProfileRepository
}

func NewLinkService(
	links repositories.LinkRepository,
	users repositories.UserRepository,
	profiles repositories.DoctorProfileRepository,
) LinkService {
	return &linkService{links: links, users: users, profiles: profiles}
}

// LinkViaInvite resolves a doctor's persistent invite code and creates a new
// link from the calling patient. This creates relationships only; it never
// migrates records.
func (s *linkService) LinkViaInvite(ctx context.Context, patientID, inviteCode string) (*LinkedDoctor, error) {
	profile, err := s.profiles.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}

	if err := s.links.Create(ctx, &models.DoctorPatientLink{
		DoctorID:  profile.UserID,
		PatientID: patientID,
	}); err != nil {
		return nil, err
	}

	doctor, err := s.users.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	utils.Audit(utils.AuditEvent{
		Actor: patientID, Action: "link_via_invite", Resource: "user:" + profile.UserID, Status: "success",
	})
	return &LinkedDoctor{
		DoctorID:       profile.UserID,
		Name:           doctor.Name,
		Specialization: profile.Specialization,
		Hospital:       profile.Hospital,
	}, nil
}

// SetPermissions replaces the permission set on the caller's link to
// doctorID. The lookup keys on the caller's own patient ID, so only the
// link's patient can reach it; a missing link is NotFound rather than a
// hint about other patients' links.
func (s *linkService) SetPermissions(ctx context.Context, patientID, doctorID string, permissions models.PermissionSet) error {
	link, err := s.links.Find(ctx, doctorID, patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotLinked) {
			return repositories.ErrNotFound
		}
		return err
	}

	if err := s.links.UpdatePermissions(ctx, link.ID, permissions); err != nil {
		return err
	}

	utils.Audit(utils.AuditEvent{
		Actor: patientID, Action: "set_permissions", Resource: "link:" + link.ID, Status: "success",
		Details: fmt.Sprintf("doctor=%s", doctorID),
	})
	return nil
}

func (s *linkService) MyDoctors(ctx context.Context, patientID string) ([]LinkedDoctor, error) {
	links, err := s.links.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	doctors := make([]LinkedDoctor, 0, len(links))
	for _, link := range links {
		entry := LinkedDoctor{DoctorID: link.DoctorID, Permissions: link.Permissions}
		if doctor, err := s.users.GetByID(ctx, link.DoctorID); err == nil {
			entry.Name = doctor.Name
		}
		if profile, err := s.profiles.GetByUserID(ctx, link.DoctorID); err == nil {
			entry.Specialization = profile.Specialization
			entry.Hospital = profile.Hospital
		}
		doctors = append(doctors, entry)
	}
	return doctors, nil
}

func (s *linkService) MyPatients(ctx context.Context, doctorID string) ([]LinkedPatient, error) {
	links, err := s.links.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	patients := make([]LinkedPatient, 0, len(links))
	for _, link := range links {
		entry := LinkedPatient{PatientID: link.PatientID, ShareCode: link.ShareCode}
		if patient, err := s.users.GetByID(ctx, link.PatientID); err == nil {
			entry.Name = patient.Name
			entry.Age = patient.Age
			entry.Shadow = patient.IsShadow()
		}
		patients = append(patients, entry)
	}
	return patients, nil
}
