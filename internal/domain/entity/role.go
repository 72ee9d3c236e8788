package entity

import "time"

// Role represents one position within a shift. RequiredCount is the
// number of residents the role needs each day the shift runs; Position
// fixes the order roles are filled in.
type Role struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ShiftID         int       `gorm:"not null;index" json:"shift_id"`
	Title           string    `gorm:"type:varchar(100);not null" json:"title"`
	QualificationID *int      `gorm:"index" json:"qualification_id,omitempty"`
	RequiredCount   int       `gorm:"not null;default:1" json:"required_count"`
	Position        int       `gorm:"not null;default:0" json:"position"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Qualification *Qualification `gorm:"foreignKey:QualificationID" json:"qualification,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// RequiresQualification checks if the role demands a specific qualification
func (r *Role) RequiresQualification() bool {
	return r.QualificationID != nil
}
