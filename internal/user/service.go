package user

import (
	"errors"

	"github.com/frahmantamala/permit-management/internal"
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(userID int64) (*userDatamodel.User, error)
	List(limit, offset int) ([]*userDatamodel.User, error)
	AssignDepartment(userID int64, departmentID *int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
		}
		return nil, internal.NewInternalError("could not load user", err)
	}
	return FromDataModel(u), nil
}

func (s *Service) List(limit, offset int) ([]*User, error) {
	rows, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("could not list users", err)
	}

	out := make([]*User, 0, len(rows))
	for _, u := range rows {
		out = append(out, FromDataModel(u))
	}
	return out, nil
}

func (s *Service) AssignDepartment(userID int64, departmentID *int64) (*User, error) {
	if err := s.repo.AssignDepartment(userID, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
		}
		return nil, internal.NewInternalError("could not assign department", err)
	}
	return s.GetByID(userID)
}
