package entity

import "time"

// PeriodStatus represents the lifecycle state of a schedule period
type PeriodStatus string

const (
	PeriodStatusDraft     PeriodStatus = "draft"
	PeriodStatusGenerated PeriodStatus = "generated"
	PeriodStatusPublished PeriodStatus = "published"
)

// SchedulePeriod represents a date range schedules are generated for
type SchedulePeriod struct {
	ID        int          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	StartDate time.Time    `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time    `gorm:"type:date;not null" json:"end_date"`
	Status    PeriodStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Assignments []ShiftAssignment `gorm:"foreignKey:PeriodID" json:"assignments,omitempty"`
}

func (SchedulePeriod) TableName() string {
	return "schedule_periods"
}

// IsDraft checks if the period has not been generated yet
func (p *SchedulePeriod) IsDraft() bool {
	return p.Status == PeriodStatusDraft
}

// IsPublished checks if the period has been released to residents
func (p *SchedulePeriod) IsPublished() bool {
	return p.Status == PeriodStatusPublished
}

// MarkGenerated moves the period into the generated state
func (p *SchedulePeriod) MarkGenerated() {
	p.Status = PeriodStatusGenerated
}
