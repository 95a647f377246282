package models

import (
	"time"
)

// User roles. Shadow patients share RolePatient; a shadow identity is
// recognized by the absence of both email and password hash.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User is the unit of ownership for all clinical data.
type User struct {
	ID           string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Email        *string   `gorm:"column:email;uniqueIndex" json:"email,omitempty"`
	PasswordHash *string   `gorm:"column:password_hash" json:"-"`
	Age          int       `gorm:"column:age" json:"age"`
	Role         string    `gorm:"column:role;not null;index;check:role IN ('patient', 'doctor', 'admin')" json:"role"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsShadow reports whether the user was created by a doctor without
// credentials and is still awaiting a share-code claim.
func (u *User) IsShadow() bool {
	return u.Email == nil && u.PasswordHash == nil
}

// DoctorProfile carries doctor metadata and the long-lived invite code
// patients use to create new links. The invite code is not the one-time
// share code carried by a link.
type DoctorProfile struct {
	ID              string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	UserID          string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	Specialization  string    `gorm:"column:specialization" json:"specialization,omitempty"`
	Hospital        string    `gorm:"column:hospital" json:"hospital,omitempty"`
	ExperienceYears int       `gorm:"column:experience_years" json:"experience_years,omitempty"`
	Available       bool      `gorm:"column:available;default:true" json:"available"`
	InviteCode      string    `gorm:"column:invite_code;uniqueIndex;not null" json:"invite_code"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
