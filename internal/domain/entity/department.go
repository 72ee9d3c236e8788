package entity

import "time"

// Department represents an operational area of the work program
type Department struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Priority  int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Shifts []Shift `gorm:"foreignKey:DepartmentID" json:"shifts,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
