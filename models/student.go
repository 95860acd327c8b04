package models

import (
	"time"

	"gorm.io/datatypes"
)

// Student statuses.
const (
	StudentActive    = "active"
	StudentPromoted  = "promoted"
	StudentLeft      = "left"
	StudentGraduated = "graduated"
)

type Student struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	AdmissionNumber string     `json:"admission_number" gorm:"unique;not null"`
	RollNumber      string     `json:"roll_number"`
	FirstName       string     `json:"first_name" gorm:"not null"`
	LastName        string     `json:"last_name"`
	Gender          string     `json:"gender"`
	DateOfBirth     *time.Time `json:"date_of_birth"`

	// Free-text category label; "JVD" students are detected by substring,
	// not by enum (see fees.IsJVD).
	StudentType  string `json:"student_type"`
	StudyingYear string `json:"studying_year" gorm:"index"`
	Section      string `json:"section"`
	Status       string `json:"status" gorm:"type:VARCHAR(20);default:active;index"`

	ParentName  string `json:"parent_name"`
	ParentPhone string `json:"parent_phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`

	// Fee document: {yearLabel: []FeeItem}, possibly in the legacy flat
	// shape for older rows. Always read through fees.Normalize.
	FeeStructure datatypes.JSON `json:"fee_structure" gorm:"type:jsonb"`

	// Public URL of the uploaded concession permission letter, if any.
	ConcessionLetterURL string `json:"concession_letter_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
