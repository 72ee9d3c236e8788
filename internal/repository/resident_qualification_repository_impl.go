package repository

import (
	"errors"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type residentQualificationRepository struct{}

func NewResidentQualificationRepository() domainRepo.ResidentQualificationRepository {
	return &residentQualificationRepository{}
}

// Grant records a qualification grant. A previously revoked row for the
// same pair is reactivated in place, keeping the uniqueness constraint
// on (resident_id, qualification_id) satisfied.
func (r *residentQualificationRepository) Grant(db *gorm.DB, grant *entity.ResidentQualification) error {
	var existing entity.ResidentQualification
	err := db.Where("resident_id = ? AND qualification_id = ?", grant.ResidentID, grant.QualificationID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Create(grant).Error
		}
		return err
	}

	result := db.Model(&entity.ResidentQualification{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{"is_active": true, "earned_on": grant.EarnedOn})
	if result.Error != nil {
		return result.Error
	}
	grant.ID = existing.ID
	active := true
	grant.IsActive = &active
	return nil
}

// Revoke deactivates an active grant ONLY if one exists. Returns
// affected rows: 1 = revoked, 0 = nothing to revoke.
func (r *residentQualificationRepository) Revoke(db *gorm.DB, residentID uuid.UUID, qualificationID int) (int64, error) {
	result := db.Model(&entity.ResidentQualification{}).
		Where("resident_id = ? AND qualification_id = ? AND is_active = ?", residentID, qualificationID, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *residentQualificationRepository) FindByResident(db *gorm.DB, residentID uuid.UUID) ([]entity.ResidentQualification, error) {
	var grants []entity.ResidentQualification
	err := db.Preload("Qualification").
		Where("resident_id = ?", residentID).
		Order("earned_on ASC").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *residentQualificationRepository) FindActiveGrant(db *gorm.DB, residentID uuid.UUID, qualificationID int) (*entity.ResidentQualification, error) {
	var grant entity.ResidentQualification
	err := db.Where("resident_id = ? AND qualification_id = ? AND is_active = ?", residentID, qualificationID, true).
		First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}
