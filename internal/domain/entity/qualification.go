package entity

import (
	"time"

	"github.com/google/uuid"
)

// Qualification categories
const (
	QualificationCategoryDriving    = "driving"
	QualificationCategoryManagement = "management"
	QualificationCategoryGeneral    = "general"
)

// Qualification represents a skill or certification residents can earn
type Qualification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"type:varchar(50);not null;index" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Qualification) TableName() string {
	return "qualifications"
}

// ResidentQualification represents a qualification granted to a resident
type ResidentQualification struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ResidentID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_resident_qualification" json:"resident_id"`
	QualificationID int       `gorm:"not null;index;uniqueIndex:idx_resident_qualification" json:"qualification_id"`
	EarnedOn        time.Time `gorm:"type:date;not null" json:"earned_on"`
	IsActive        *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Qualification Qualification `gorm:"foreignKey:QualificationID" json:"qualification,omitempty"`
}

func (ResidentQualification) TableName() string {
	return "resident_qualifications"
}

// IsGranted checks if the qualification grant is currently active
func (rq *ResidentQualification) IsGranted() bool {
	return rq.IsActive != nil && *rq.IsActive
}
