package repository

import (
	"work-program-scheduler/internal/domain/entity"
	domainRepo "work-program-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Order("priority DESC, name ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}
