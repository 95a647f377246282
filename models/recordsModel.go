package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a JSON array of strings in a JSONB column, used for
// medication intake times such as ["08:00", "14:00", "20:00"].
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return data, nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", value)
	}
	return json.Unmarshal(data, l)
}

// HealthLog is a patient-authored daily log entry.
type HealthLog struct {
	ID            string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	PatientID     string    `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	LogType       string    `gorm:"column:log_type;not null" json:"log_type"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	Description   string    `gorm:"column:description;type:text" json:"description,omitempty"`
	PainLevel     *int      `gorm:"column:pain_level" json:"pain_level,omitempty"`
	BleedingLevel string    `gorm:"column:bleeding_level" json:"bleeding_level,omitempty"`
	Mood          string    `gorm:"column:mood" json:"mood,omitempty"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	LogDate       string    `gorm:"column:log_date;not null;index" json:"log_date"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (HealthLog) TableName() string {
	return "health_logs"
}

// Medication carries an active flag instead of hard deletion so that a
// discontinued prescription stays on record.
type Medication struct {
	ID           string     `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	PatientID    string     `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	PrescribedBy *string    `gorm:"column:prescribed_by;type:uuid" json:"prescribed_by,omitempty"`
	Name         string     `gorm:"column:name;not null" json:"name"`
	Dosage       string     `gorm:"column:dosage" json:"dosage,omitempty"`
	Frequency    string     `gorm:"column:frequency" json:"frequency,omitempty"`
	Times        StringList `gorm:"column:times;type:jsonb" json:"times,omitempty"`
	StartDate    string     `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate      string     `gorm:"column:end_date" json:"end_date,omitempty"`
	Notes        string     `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Active       bool       `gorm:"column:active;default:true" json:"active"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Medication) TableName() string {
	return "medications"
}

// DietPlan is a per-meal plan entry authored by the patient or a linked doctor.
type DietPlan struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	PatientID string    `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	CreatedBy *string   `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	MealType  string    `gorm:"column:meal_type;not null" json:"meal_type"`
	FoodItems string    `gorm:"column:food_items;type:text;not null" json:"food_items"`
	Calories  int       `gorm:"column:calories" json:"calories,omitempty"`
	DayOfWeek string    `gorm:"column:day_of_week" json:"day_of_week,omitempty"`
	Notes     string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DietPlan) TableName() string {
	return "diet_plans"
}

// MedicalReport is an uploaded clinical document.
type MedicalReport struct {
	ID         string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	PatientID  string    `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	UploadedBy string    `gorm:"column:uploaded_by;type:uuid;not null" json:"uploaded_by"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	ReportType string    `gorm:"column:report_type;not null" json:"report_type"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	FileName   string    `gorm:"column:file_name" json:"file_name,omitempty"`
	FileData   string    `gorm:"column:file_data;type:text" json:"file_data,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MedicalReport) TableName() string {
	return "medical_reports"
}

// MedicalHistory holds at most one row per patient and is upserted in place.
type MedicalHistory struct {
	ID                string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	PatientID         string    `gorm:"column:patient_id;type:uuid;not null;uniqueIndex" json:"patient_id"`
	Allergies         string    `gorm:"column:allergies;type:text" json:"allergies,omitempty"`
	ChronicConditions string    `gorm:"column:chronic_conditions;type:text" json:"chronic_conditions,omitempty"`
	Surgeries         string    `gorm:"column:surgeries;type:text" json:"surgeries,omitempty"`
	Medications       string    `gorm:"column:medications;type:text" json:"medications,omitempty"`
	ConsultingSummary string    `gorm:"column:consulting_summary;type:text" json:"consulting_summary,omitempty"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MedicalHistory) TableName() string {
	return "medical_histories"
}

// Consultation records a doctor visit with its findings.
type Consultation struct {
	ID            string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	DoctorID      string    `gorm:"column:doctor_id;type:uuid;not null;index" json:"doctor_id"`
	PatientID     string    `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	VisitDate     string    `gorm:"column:visit_date;not null" json:"visit_date"`
	Symptoms      string    `gorm:"column:symptoms;type:text" json:"symptoms,omitempty"`
	Diagnosis     string    `gorm:"column:diagnosis;type:text" json:"diagnosis,omitempty"`
	TreatmentPlan string    `gorm:"column:treatment_plan;type:text" json:"treatment_plan,omitempty"`
	Prescription  string    `gorm:"column:prescription;type:text" json:"prescription,omitempty"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Consultation) TableName() string {
	return "consultations"
}
