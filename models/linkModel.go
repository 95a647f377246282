package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Category identifies one clinical-resource type gated independently by a
// link's permission set.
type Category string

const (
	CategoryHealthLogs     Category = "health_logs"
	CategoryMedications    Category = "medications"
	CategoryReports        Category = "reports"
	CategoryDietPlans      Category = "diet_plans"
	CategoryMedicalHistory Category = "medical_history"
	CategoryConsultations  Category = "consultations"
)

// Categories lists every defined resource category.
func Categories() []Category {
	return []Category{
		CategoryHealthLogs,
		CategoryMedications,
		CategoryReports,
		CategoryDietPlans,
		CategoryMedicalHistory,
		CategoryConsultations,
	}
}

// Valid reports whether c names a defined category.
func (c Category) Valid() bool {
	switch c {
	case CategoryHealthLogs, CategoryMedications, CategoryReports,
		CategoryDietPlans, CategoryMedicalHistory, CategoryConsultations:
		return true
	}
	return false
}

// PermissionSet is the per-link grant map, one field per category. A nil
// field means the patient never touched that category, which grants access:
// links predate permission-setting and must keep working, so absence never
// denies. Patients revoke by setting a category to false.
type PermissionSet struct {
	HealthLogs     *bool `json:"health_logs,omitempty"`
	Medications    *bool `json:"medications,omitempty"`
	Reports        *bool `json:"reports,omitempty"`
	DietPlans      *bool `json:"diet_plans,omitempty"`
	MedicalHistory *bool `json:"medical_history,omitempty"`
	Consultations  *bool `json:"consultations,omitempty"`
}

// Allows evaluates the grant for one category, applying the allow-when-absent
// default. The reports default stays allow like every other category; the
// product question of an opt-in reports default is tracked outside the code.
func (p PermissionSet) Allows(category Category) bool {
	var flag *bool
	switch category {
	case CategoryHealthLogs:
		flag = p.HealthLogs
	case CategoryMedications:
		flag = p.Medications
	case CategoryReports:
		flag = p.Reports
	case CategoryDietPlans:
		flag = p.DietPlans
	case CategoryMedicalHistory:
		flag = p.MedicalHistory
	case CategoryConsultations:
		flag = p.Consultations
	default:
		return false
	}
	if flag == nil {
		return true
	}
	return *flag
}

// Value serializes the set to JSONB for storage.
func (p PermissionSet) Value() (driver.Value, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal permission set: %w", err)
	}
	return data, nil
}

// Scan reads the set back from its JSONB column. A NULL column is the empty
// set, which allows every category.
func (p *PermissionSet) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionSet{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported permission set column type %T", value)
	}
	return json.Unmarshal(data, p)
}

// DoctorPatientLink is the relationship edge granting a doctor conditional
// access to a patient's records. The patient side may reference a shadow
// identity, in which case ShareCode holds the one-time claim token.
type DoctorPatientLink struct {
	ID          string        `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	DoctorID    string        `gorm:"column:doctor_id;type:uuid;not null;uniqueIndex:idx_doctor_patient;index" json:"doctor_id"`
	PatientID   string        `gorm:"column:patient_id;type:uuid;not null;uniqueIndex:idx_doctor_patient;index" json:"patient_id"`
	Permissions PermissionSet `gorm:"column:permissions;type:jsonb" json:"permissions"`
	ShareCode   *string       `gorm:"column:share_code;uniqueIndex" json:"share_code,omitempty"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DoctorPatientLink) TableName() string {
	return "doctor_patient_links"
}
