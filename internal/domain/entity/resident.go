package entity

import (
	"time"

	"github.com/google/uuid"
)

// daysPerMonth is the average Gregorian month length used for tenure math.
const daysPerMonth = 30.44

// Resident represents a program participant who can be scheduled for work shifts
type Resident struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName     string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null" json:"last_name"`
	AdmissionDate time.Time `gorm:"type:date;not null" json:"admission_date"`
	IsActive      *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Qualifications []ResidentQualification `gorm:"foreignKey:ResidentID" json:"qualifications,omitempty"`
	Availability   []AvailabilityWindow    `gorm:"foreignKey:ResidentID" json:"availability,omitempty"`
	Appointments   []Appointment           `gorm:"foreignKey:ResidentID" json:"appointments,omitempty"`
}

func (Resident) TableName() string {
	return "residents"
}

// FullName returns the resident's display name
func (r *Resident) FullName() string {
	return r.FirstName + " " + r.LastName
}

// TenureMonths returns the resident's program tenure at the given date,
// in average-length months.
func (r *Resident) TenureMonths(at time.Time) float64 {
	days := at.Sub(r.AdmissionDate).Hours() / 24
	if days < 0 {
		return 0
	}
	return days / daysPerMonth
}

// HasActiveQualification checks whether the resident holds an active grant
// of the given qualification.
func (r *Resident) HasActiveQualification(qualificationID int) bool {
	for i := range r.Qualifications {
		q := &r.Qualifications[i]
		if q.QualificationID == qualificationID && q.IsGranted() {
			return true
		}
	}
	return false
}

// AvailabilityOn returns the resident's availability window for the given
// weekday, or nil when none is recorded.
func (r *Resident) AvailabilityOn(day time.Weekday) *AvailabilityWindow {
	for i := range r.Availability {
		if r.Availability[i].DayOfWeek == int(day) {
			return &r.Availability[i]
		}
	}
	return nil
}

// HasAppointmentOn checks whether any of the resident's appointments falls
// on the given calendar date.
func (r *Resident) HasAppointmentOn(date time.Time) bool {
	for i := range r.Appointments {
		if r.Appointments[i].OccursOn(date) {
			return true
		}
	}
	return false
}
