package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"work-program-scheduler/internal/domain/entity"
)

// SeedFile mirrors the YAML fixture layout used to provision an
// installation: catalog rows first, then staff and residents, then
// global work limits. Seeding is idempotent; rows already present by
// their natural key are left untouched.
type SeedFile struct {
	Departments    []SeedDepartment    `yaml:"departments"`
	Qualifications []SeedQualification `yaml:"qualifications"`
	Shifts         []SeedShift         `yaml:"shifts"`
	Users          []SeedUser          `yaml:"users"`
	Residents      []SeedResident      `yaml:"residents"`
	WorkLimits     []SeedWorkLimit     `yaml:"work_limits"`
}

type SeedDepartment struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
}

type SeedQualification struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type SeedShift struct {
	Department             string     `yaml:"department"`
	Name                   string     `yaml:"name"`
	StartTime              string     `yaml:"start_time"`
	EndTime                string     `yaml:"end_time"`
	Days                   []string   `yaml:"days"`
	MinTenureMonths        int        `yaml:"min_tenure_months"`
	AppointmentPolicy      string     `yaml:"appointment_policy"`
	BlockedAppointmentType string     `yaml:"blocked_appointment_type"`
	Delivery               bool       `yaml:"delivery"`
	Runs                   []SeedRun  `yaml:"runs"`
	Roles                  []SeedRole `yaml:"roles"`
}

type SeedRun struct {
	Name  string `yaml:"name" json:"name"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

type SeedRole struct {
	Title         string `yaml:"title"`
	Qualification string `yaml:"qualification"`
	RequiredCount int    `yaml:"required_count"`
	Position      int    `yaml:"position"`
}

type SeedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type SeedResident struct {
	FirstName      string             `yaml:"first_name"`
	LastName       string             `yaml:"last_name"`
	AdmissionDate  string             `yaml:"admission_date"`
	Qualifications []string           `yaml:"qualifications"`
	Availability   []SeedAvailability `yaml:"availability"`
	Appointments   []SeedAppointment  `yaml:"appointments"`
}

type SeedAvailability struct {
	Day       string `yaml:"day"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type SeedAppointment struct {
	StartAt        string `yaml:"start_at"`
	EndAt          string `yaml:"end_at"`
	Type           string `yaml:"type"`
	RecurrenceRule string `yaml:"recurrence_rule"`
}

type SeedWorkLimit struct {
	Type     string `yaml:"type"`
	MaxValue int    `yaml:"max_value"`
}

// LoadSeedFile reads and decodes a YAML seed fixture from disk.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("seed: decode %s: %w", path, err)
	}
	return &file, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[name]
	if !ok {
		return 0, fmt.Errorf("seed: unknown weekday %q", name)
	}
	return day, nil
}

// SeedService loads a whole fixture in one transaction so a partially
// applied seed never ends up in the database.
type SeedService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewSeedService(db *gorm.DB, log *logrus.Logger) *SeedService {
	return &SeedService{DB: db, Log: log}
}

func (s *SeedService) Apply(file *SeedFile) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		departmentIDs, err := s.seedDepartments(tx, file.Departments)
		if err != nil {
			return err
		}
		qualificationIDs, err := s.seedQualifications(tx, file.Qualifications)
		if err != nil {
			return err
		}
		if err := s.seedShifts(tx, file.Shifts, departmentIDs, qualificationIDs); err != nil {
			return err
		}
		if err := s.seedUsers(tx, file.Users); err != nil {
			return err
		}
		if err := s.seedResidents(tx, file.Residents, qualificationIDs); err != nil {
			return err
		}
		if err := s.seedWorkLimits(tx, file.WorkLimits); err != nil {
			return err
		}
		s.Log.Infof("Seeded %d departments, %d qualifications, %d shifts, %d users, %d residents, %d work limits",
			len(file.Departments), len(file.Qualifications), len(file.Shifts),
			len(file.Users), len(file.Residents), len(file.WorkLimits))
		return nil
	})
}

func (s *SeedService) seedDepartments(tx *gorm.DB, seeds []SeedDepartment) (map[string]int, error) {
	ids := make(map[string]int, len(seeds))
	for _, seed := range seeds {
		department := entity.Department{Name: seed.Name}
		err := tx.Where("name = ?", seed.Name).
			Attrs(entity.Department{Priority: seed.Priority}).
			FirstOrCreate(&department).Error
		if err != nil {
			return nil, fmt.Errorf("seed: department %q: %w", seed.Name, err)
		}
		ids[seed.Name] = department.ID
	}
	return ids, nil
}

func (s *SeedService) seedQualifications(tx *gorm.DB, seeds []SeedQualification) (map[string]int, error) {
	ids := make(map[string]int, len(seeds))
	for _, seed := range seeds {
		qualification := entity.Qualification{Name: seed.Name}
		err := tx.Where("name = ?", seed.Name).
			Attrs(entity.Qualification{Category: seed.Category}).
			FirstOrCreate(&qualification).Error
		if err != nil {
			return nil, fmt.Errorf("seed: qualification %q: %w", seed.Name, err)
		}
		ids[seed.Name] = qualification.ID
	}
	return ids, nil
}

func (s *SeedService) seedShifts(tx *gorm.DB, seeds []SeedShift, departmentIDs, qualificationIDs map[string]int) error {
	for _, seed := range seeds {
		departmentID, ok := departmentIDs[seed.Department]
		if !ok {
			return fmt.Errorf("seed: unknown department %q for shift %q", seed.Department, seed.Name)
		}

		shift := entity.Shift{
			DepartmentID:    departmentID,
			Name:            seed.Name,
			StartTime:       seed.StartTime,
			EndTime:         seed.EndTime,
			MinTenureMonths: seed.MinTenureMonths,
			IsDeliveryShift: seed.Delivery,
		}
		for _, name := range seed.Days {
			day, err := parseWeekday(name)
			if err != nil {
				return fmt.Errorf("seed: shift %q: %w", seed.Name, err)
			}
			switch day {
			case time.Sunday:
				shift.Sunday = true
			case time.Monday:
				shift.Monday = true
			case time.Tuesday:
				shift.Tuesday = true
			case time.Wednesday:
				shift.Wednesday = true
			case time.Thursday:
				shift.Thursday = true
			case time.Friday:
				shift.Friday = true
			case time.Saturday:
				shift.Saturday = true
			}
		}
		if seed.AppointmentPolicy != "" {
			shift.AppointmentPolicy = entity.AppointmentPolicy(seed.AppointmentPolicy)
		}
		if seed.BlockedAppointmentType != "" {
			shift.BlockedAppointmentType = entity.AppointmentType(seed.BlockedAppointmentType)
		}
		if len(seed.Runs) > 0 {
			payload, err := json.Marshal(seed.Runs)
			if err != nil {
				return fmt.Errorf("seed: shift %q runs: %w", seed.Name, err)
			}
			shift.DeliveryRuns = string(payload)
		}

		var existing entity.Shift
		err := tx.Where("department_id = ? AND name = ?", departmentID, seed.Name).First(&existing).Error
		if err == nil {
			shift.ID = existing.ID
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&shift).Error; err != nil {
				return fmt.Errorf("seed: shift %q: %w", seed.Name, err)
			}
		} else {
			return fmt.Errorf("seed: shift %q: %w", seed.Name, err)
		}

		for _, roleSeed := range seed.Roles {
			role := entity.Role{ShiftID: shift.ID, Title: roleSeed.Title}
			attrs := entity.Role{
				RequiredCount: roleSeed.RequiredCount,
				Position:      roleSeed.Position,
			}
			if roleSeed.Qualification != "" {
				qualificationID, ok := qualificationIDs[roleSeed.Qualification]
				if !ok {
					return fmt.Errorf("seed: unknown qualification %q for role %q", roleSeed.Qualification, roleSeed.Title)
				}
				attrs.QualificationID = &qualificationID
			}
			err := tx.Where("shift_id = ? AND title = ?", shift.ID, roleSeed.Title).
				Attrs(attrs).
				FirstOrCreate(&role).Error
			if err != nil {
				return fmt.Errorf("seed: role %q: %w", roleSeed.Title, err)
			}
		}
	}
	return nil
}

func (s *SeedService) seedUsers(tx *gorm.DB, seeds []SeedUser) error {
	for _, seed := range seeds {
		var count int64
		if err := tx.Model(&entity.User{}).Where("email = ?", seed.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("seed: user %q: %w", seed.Email, err)
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: user %q: %w", seed.Email, err)
		}
		role := seed.Role
		if role == "" {
			role = entity.RoleCoordinator
		}
		user := entity.User{
			Email:    seed.Email,
			Password: string(hashed),
			FullName: seed.FullName,
			Role:     role,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("seed: user %q: %w", seed.Email, err)
		}
	}
	return nil
}

func (s *SeedService) seedResidents(tx *gorm.DB, seeds []SeedResident, qualificationIDs map[string]int) error {
	for _, seed := range seeds {
		admission, err := time.Parse("2006-01-02", seed.AdmissionDate)
		if err != nil {
			return fmt.Errorf("seed: resident %s %s: bad admission_date %q", seed.FirstName, seed.LastName, seed.AdmissionDate)
		}

		resident := entity.Resident{FirstName: seed.FirstName, LastName: seed.LastName}
		err = tx.Where("first_name = ? AND last_name = ?", seed.FirstName, seed.LastName).
			Attrs(entity.Resident{AdmissionDate: admission}).
			FirstOrCreate(&resident).Error
		if err != nil {
			return fmt.Errorf("seed: resident %s %s: %w", seed.FirstName, seed.LastName, err)
		}

		for _, name := range seed.Qualifications {
			qualificationID, ok := qualificationIDs[name]
			if !ok {
				return fmt.Errorf("seed: unknown qualification %q for resident %s %s", name, seed.FirstName, seed.LastName)
			}
			grant := entity.ResidentQualification{ResidentID: resident.ID, QualificationID: qualificationID}
			err := tx.Where("resident_id = ? AND qualification_id = ?", resident.ID, qualificationID).
				Attrs(entity.ResidentQualification{EarnedOn: admission}).
				FirstOrCreate(&grant).Error
			if err != nil {
				return fmt.Errorf("seed: grant %q for resident %s %s: %w", name, seed.FirstName, seed.LastName, err)
			}
		}

		for _, window := range seed.Availability {
			day, err := parseWeekday(window.Day)
			if err != nil {
				return fmt.Errorf("seed: resident %s %s: %w", seed.FirstName, seed.LastName, err)
			}
			availability := entity.AvailabilityWindow{ResidentID: resident.ID, DayOfWeek: int(day)}
			err = tx.Where("resident_id = ? AND day_of_week = ?", resident.ID, int(day)).
				Attrs(entity.AvailabilityWindow{StartTime: window.StartTime, EndTime: window.EndTime}).
				FirstOrCreate(&availability).Error
			if err != nil {
				return fmt.Errorf("seed: availability for resident %s %s: %w", seed.FirstName, seed.LastName, err)
			}
		}

		for _, appt := range seed.Appointments {
			startAt, err := time.Parse(time.RFC3339, appt.StartAt)
			if err != nil {
				return fmt.Errorf("seed: appointment for resident %s %s: bad start_at %q", seed.FirstName, seed.LastName, appt.StartAt)
			}
			endAt, err := time.Parse(time.RFC3339, appt.EndAt)
			if err != nil {
				return fmt.Errorf("seed: appointment for resident %s %s: bad end_at %q", seed.FirstName, seed.LastName, appt.EndAt)
			}
			appointment := entity.Appointment{ResidentID: resident.ID, StartAt: startAt}
			attrs := entity.Appointment{
				EndAt: endAt,
				Type:  entity.AppointmentType(appt.Type),
			}
			if appt.RecurrenceRule != "" {
				rule := appt.RecurrenceRule
				attrs.RecurrenceRule = &rule
			}
			err = tx.Where("resident_id = ? AND start_at = ?", resident.ID, startAt).
				Attrs(attrs).
				FirstOrCreate(&appointment).Error
			if err != nil {
				return fmt.Errorf("seed: appointment for resident %s %s: %w", seed.FirstName, seed.LastName, err)
			}
		}
	}
	return nil
}

func (s *SeedService) seedWorkLimits(tx *gorm.DB, seeds []SeedWorkLimit) error {
	for _, seed := range seeds {
		limitType := entity.LimitType(seed.Type)
		if !limitType.IsValid() {
			return fmt.Errorf("seed: unknown work limit type %q", seed.Type)
		}
		var count int64
		err := tx.Model(&entity.WorkLimit{}).
			Where("limit_type = ? AND resident_id IS NULL", limitType).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("seed: work limit %q: %w", seed.Type, err)
		}
		if count > 0 {
			continue
		}
		limit := entity.WorkLimit{LimitType: limitType, MaxValue: seed.MaxValue}
		if err := tx.Create(&limit).Error; err != nil {
			return fmt.Errorf("seed: work limit %q: %w", seed.Type, err)
		}
	}
	return nil
}
