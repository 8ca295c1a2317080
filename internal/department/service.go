package department

import (
	"errors"

	"github.com/frahmantamala/permit-management/internal"
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository interface {
	Create(d *userDatamodel.Department) error
	GetByID(id int64) (*userDatamodel.Department, error)
	List() ([]*userDatamodel.Department, error)
	UpdateName(id int64, name string) error
	Delete(id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(dto *CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	d := &userDatamodel.Department{Name: dto.Name}
	if err := s.repo.Create(d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("department name already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create department", err)
	}

	return FromDataModel(d), nil
}

func (s *Service) GetByID(id int64) (*DepartmentWithUsers, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
		}
		return nil, internal.NewInternalError("could not load department", err)
	}
	return FromDataModelWithUsers(d), nil
}

func (s *Service) List() ([]*Department, error) {
	rows, err := s.repo.List()
	if err != nil {
		return nil, internal.NewInternalError("could not list departments", err)
	}

	out := make([]*Department, 0, len(rows))
	for _, d := range rows {
		out = append(out, FromDataModel(d))
	}
	return out, nil
}

func (s *Service) Update(id int64, dto *UpdateDepartmentDTO) (*DepartmentWithUsers, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if err := s.repo.UpdateName(id, dto.Name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("department name already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not update department", err)
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
		}
		return internal.NewInternalError("could not delete department", err)
	}
	return nil
}
