package personnel

import (
	"errors"

	"github.com/frahmantamala/permit-management/internal"
	personnelDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
	"gorm.io/gorm"
)

type Repository interface {
	CreatePerson(p *personnelDatamodel.PersonalInfo) error
	GetPersonByID(id int64) (*personnelDatamodel.PersonalInfo, error)
	ListPeople(limit, offset int) ([]*personnelDatamodel.PersonalInfo, error)
	UpdatePerson(id int64, fields map[string]interface{}) error
	DeletePerson(id int64) error

	CreateContractor(c *personnelDatamodel.Contractor) error
	GetContractorByID(id int64) (*personnelDatamodel.Contractor, error)
	ListContractors() ([]*personnelDatamodel.Contractor, error)
	DeleteContractor(id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePerson(dto *CreatePersonDTO) (*PersonView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if dto.ContractorID != nil {
		if _, err := s.repo.GetContractorByID(*dto.ContractorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, internal.NewNotFoundError("contractor not found", internal.ErrCodePersonNotFound)
			}
			return nil, internal.NewInternalError("could not load contractor", err)
		}
	}

	p := &personnelDatamodel.PersonalInfo{
		FullName:     dto.FullName,
		NationalID:   dto.NationalID,
		IsAllowed:    dto.IsAllowed,
		ContractorID: dto.ContractorID,
	}
	if err := s.repo.CreatePerson(p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("national_id already registered", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create person", err)
	}

	return s.GetPerson(p.ID)
}

func (s *Service) GetPerson(id int64) (*PersonView, error) {
	p, err := s.repo.GetPersonByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("person not found", internal.ErrCodePersonNotFound)
		}
		return nil, internal.NewInternalError("could not load person", err)
	}
	return FromDataModel(p), nil
}

func (s *Service) ListPeople(limit, offset int) ([]*PersonView, error) {
	rows, err := s.repo.ListPeople(limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("could not list people", err)
	}
	out := make([]*PersonView, 0, len(rows))
	for _, p := range rows {
		out = append(out, FromDataModel(p))
	}
	return out, nil
}

func (s *Service) UpdatePerson(id int64, dto *UpdatePersonDTO) (*PersonView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	fields := map[string]interface{}{}
	if dto.FullName != nil {
		fields["full_name"] = *dto.FullName
	}
	if dto.ContractorID != nil {
		fields["contractor_id"] = *dto.ContractorID
	}
	if dto.ClearContractor {
		fields["contractor_id"] = nil
	}
	if len(fields) == 0 {
		return nil, internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)
	}

	if err := s.repo.UpdatePerson(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("person not found", internal.ErrCodePersonNotFound)
		}
		return nil, internal.NewInternalError("could not update person", err)
	}

	return s.GetPerson(id)
}

// SetAllowed flips the permit-eligibility flag on a person.
func (s *Service) SetAllowed(id int64, allowed bool) (*PersonView, error) {
	if err := s.repo.UpdatePerson(id, map[string]interface{}{"is_allowed": allowed}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("person not found", internal.ErrCodePersonNotFound)
		}
		return nil, internal.NewInternalError("could not update person", err)
	}
	return s.GetPerson(id)
}

func (s *Service) DeletePerson(id int64) error {
	if err := s.repo.DeletePerson(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("person not found", internal.ErrCodePersonNotFound)
		}
		return internal.NewInternalError("could not delete person", err)
	}
	return nil
}

func (s *Service) CreateContractor(dto *CreateContractorDTO) (*ContractorView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	c := &personnelDatamodel.Contractor{
		CompanyName:  dto.CompanyName,
		ContactEmail: dto.ContactEmail,
		ContactPhone: dto.ContactPhone,
	}
	if err := s.repo.CreateContractor(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("contact_email already registered", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create contractor", err)
	}
	return ContractorFromDataModel(c), nil
}

func (s *Service) ListContractors() ([]*ContractorView, error) {
	rows, err := s.repo.ListContractors()
	if err != nil {
		return nil, internal.NewInternalError("could not list contractors", err)
	}
	out := make([]*ContractorView, 0, len(rows))
	for _, c := range rows {
		out = append(out, ContractorFromDataModel(c))
	}
	return out, nil
}

func (s *Service) DeleteContractor(id int64) error {
	if err := s.repo.DeleteContractor(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("contractor not found", internal.ErrCodePersonNotFound)
		}
		return internal.NewInternalError("could not delete contractor", err)
	}
	return nil
}
