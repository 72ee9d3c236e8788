package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentPolicy describes how a shift treats resident appointments.
// The policy is catalog metadata recording program rules; the generation
// engine applies the same appointment checks to every shift.
type AppointmentPolicy string

const (
	AppointmentPolicyBlocksAll      AppointmentPolicy = "blocks_all"
	AppointmentPolicyBlocksCategory AppointmentPolicy = "blocks_category"
	AppointmentPolicyAllowsLeave    AppointmentPolicy = "allows_leave"
)

// Shift represents a recurring work shift within a department. Weekday
// flags mark the days the shift runs; StartTime and EndTime bound its
// daily clock window. Delivery shifts additionally carry structured runs
// as raw JSON in DeliveryRuns.
type Shift struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID int    `gorm:"not null;index" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	StartTime    string `gorm:"type:time;not null" json:"start_time"`
	EndTime      string `gorm:"type:time;not null" json:"end_time"`

	Monday    bool `gorm:"not null;default:false" json:"monday"`
	Tuesday   bool `gorm:"not null;default:false" json:"tuesday"`
	Wednesday bool `gorm:"not null;default:false" json:"wednesday"`
	Thursday  bool `gorm:"not null;default:false" json:"thursday"`
	Friday    bool `gorm:"not null;default:false" json:"friday"`
	Saturday  bool `gorm:"not null;default:false" json:"saturday"`
	Sunday    bool `gorm:"not null;default:false" json:"sunday"`

	MinTenureMonths        int               `gorm:"not null;default:0" json:"min_tenure_months"`
	AppointmentPolicy      AppointmentPolicy `gorm:"type:varchar(30);not null;default:'blocks_all'" json:"appointment_policy"`
	BlockedAppointmentType AppointmentType   `gorm:"type:varchar(30)" json:"blocked_appointment_type,omitempty"`

	IsMultiPeriod   bool   `gorm:"not null;default:false" json:"is_multi_period"`
	IsDeliveryShift bool   `gorm:"not null;default:false" json:"is_delivery_shift"`
	DeliveryRuns    string `gorm:"type:jsonb" json:"delivery_runs,omitempty"`

	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Roles      []Role     `gorm:"foreignKey:ShiftID" json:"roles,omitempty"`
}

func (Shift) TableName() string {
	return "shifts"
}

// RunsOn checks whether the shift runs on the given weekday
func (s *Shift) RunsOn(day time.Weekday) bool {
	week := [7]bool{s.Sunday, s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday}
	return week[int(day)]
}

// IsDelivery checks whether the shift is scheduled as a whole delivery
// team rather than role by role
func (s *Shift) IsDelivery() bool {
	return s.IsMultiPeriod || s.IsDeliveryShift
}

// DurationHours returns the length of the shift's clock window in hours.
// Malformed or inverted windows count as zero.
func (s *Shift) DurationHours() decimal.Decimal {
	start, err := ClockMinutes(s.StartTime)
	if err != nil {
		return decimal.Zero
	}
	end, err := ClockMinutes(s.EndTime)
	if err != nil || end <= start {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(end - start)).Div(decimal.NewFromInt(60))
}
