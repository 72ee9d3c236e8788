package usecase

import (
	"context"
	"errors"

	"work-program-scheduler/internal/converter"
	"work-program-scheduler/internal/delivery/dto"
	"work-program-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrShiftNotFound = errors.New("shift not found")

// CatalogUsecase serves the seeded scheduling catalog. Departments,
// qualifications, shifts and their role slots are written only by seed
// fixtures, so this surface is read-only.
type CatalogUsecase interface {
	GetAllDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetAllQualifications(ctx context.Context) (*dto.QualificationListResponse, error)
	GetAllShifts(ctx context.Context) (*dto.ShiftListResponse, error)
	GetShift(ctx context.Context, id int) (*dto.ShiftResponse, error)
}

type catalogUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	departmentRepo    repository.DepartmentRepository
	qualificationRepo repository.QualificationRepository
	shiftRepo         repository.ShiftRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	qualificationRepo repository.QualificationRepository,
	shiftRepo repository.ShiftRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:                db,
		log:               log,
		departmentRepo:    departmentRepo,
		qualificationRepo: qualificationRepo,
		shiftRepo:         shiftRepo,
	}
}

func (u *catalogUsecase) GetAllDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}

func (u *catalogUsecase) GetAllQualifications(ctx context.Context) (*dto.QualificationListResponse, error) {
	qualifications, err := u.qualificationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all qualifications: %+v", err)
		return nil, err
	}

	return &dto.QualificationListResponse{
		Qualifications: converter.QualificationsToResponses(qualifications),
		Total:          len(qualifications),
	}, nil
}

func (u *catalogUsecase) GetAllShifts(ctx context.Context) (*dto.ShiftListResponse, error) {
	shifts, err := u.shiftRepo.FindActiveWithRoles(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active shifts: %+v", err)
		return nil, err
	}

	return &dto.ShiftListResponse{
		Shifts: converter.ShiftsToResponses(shifts),
		Total:  len(shifts),
	}, nil
}

func (u *catalogUsecase) GetShift(ctx context.Context, id int) (*dto.ShiftResponse, error) {
	shift, err := u.shiftRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find shift %d: %+v", id, err)
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	return converter.ShiftToResponse(shift), nil
}
