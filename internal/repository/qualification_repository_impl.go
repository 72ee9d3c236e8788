package repository

import (
	"errors"

	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type qualificationRepository struct{}

func NewQualificationRepository() domainRepo.QualificationRepository {
	return &qualificationRepository{}
}

func (r *qualificationRepository) FindByID(db *gorm.DB, id int) (*entity.Qualification, error) {
	var qualification entity.Qualification
	err := db.Where("id = ?", id).First(&qualification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &qualification, nil
}

func (r *qualificationRepository) FindAll(db *gorm.DB) ([]entity.Qualification, error) {
	var qualifications []entity.Qualification
	err := db.Order("category ASC, name ASC").Find(&qualifications).Error
	if err != nil {
		return nil, err
	}
	return qualifications, nil
}
