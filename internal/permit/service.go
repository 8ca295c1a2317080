package permit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frahmantamala/permit-management/internal"
	permitDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/permit"
	personnelDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
	stationDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/station"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *permitDatamodel.Permit) error
	GetByID(id int64) (*permitDatamodel.Permit, error)
	List(status string, limit, offset int) ([]*permitDatamodel.Permit, error)
	ListByStation(stationID int64) ([]*permitDatamodel.Permit, error)
	ListByPerson(personID int64) ([]*permitDatamodel.Permit, error)
	UpdateStatus(id int64, fromStatus, toStatus string, approverID int64) error
	AppendStations(p *permitDatamodel.Permit, stations []stationDatamodel.Station) error
	AppendPeople(p *permitDatamodel.Permit, people []personnelDatamodel.PersonalInfo) error

	GetStationsByIDs(ids []int64) ([]stationDatamodel.Station, error)
	GetPeopleByIDs(ids []int64) ([]personnelDatamodel.PersonalInfo, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new pending permit for the requester, covering the given
// stations and people. People flagged as not allowed are rejected up front.
func (s *Service) Create(dto *CreatePermitDTO, requesterID int64) (*PermitView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	stations, err := s.resolveStations(dto.StationIDs)
	if err != nil {
		return nil, err
	}

	people, err := s.resolvePeople(dto.PersonIDs)
	if err != nil {
		return nil, err
	}

	p := &permitDatamodel.Permit{
		ControlNumber: generateControlNumber(),
		Type:          dto.Type,
		Status:        StatusPending,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		RequesterID:   requesterID,
		Stations:      stations,
		People:        people,
	}

	if err := s.repo.Create(p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("control number collision, retry", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create permit", err)
	}

	return s.GetByID(p.ID)
}

func (s *Service) GetByID(id int64) (*PermitView, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("permit not found", internal.ErrCodePermitNotFound)
		}
		return nil, internal.NewInternalError("could not load permit", err)
	}
	return FromDataModel(p), nil
}

func (s *Service) List(status string, limit, offset int) ([]*PermitView, error) {
	if status != "" && status != StatusPending && status != StatusApproved && status != StatusRejected {
		return nil, internal.NewValidationError("unknown status filter", internal.ErrCodeInvalidPermitStatus)
	}

	rows, err := s.repo.List(status, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("could not list permits", err)
	}
	return views(rows), nil
}

// ListByStation returns the permits covering a station.
func (s *Service) ListByStation(stationID int64) ([]*PermitView, error) {
	rows, err := s.repo.ListByStation(stationID)
	if err != nil {
		return nil, internal.NewInternalError("could not list permits for station", err)
	}
	return views(rows), nil
}

// ListByPerson returns the permits covering a person.
func (s *Service) ListByPerson(personID int64) ([]*PermitView, error) {
	rows, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, internal.NewInternalError("could not list permits for person", err)
	}
	return views(rows), nil
}

// Approve moves a pending permit to approved and records the approver.
func (s *Service) Approve(id int64, approverID int64) (*PermitView, error) {
	return s.transition(id, StatusApproved, approverID)
}

// Reject moves a pending permit to rejected and records the approver.
func (s *Service) Reject(id int64, approverID int64) (*PermitView, error) {
	return s.transition(id, StatusRejected, approverID)
}

func (s *Service) transition(id int64, toStatus string, approverID int64) (*PermitView, error) {
	err := s.repo.UpdateStatus(id, StatusPending, toStatus, approverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// distinguish a missing permit from a non-pending one
			if _, getErr := s.repo.GetByID(id); getErr != nil {
				return nil, internal.NewNotFoundError("permit not found", internal.ErrCodePermitNotFound)
			}
			return nil, internal.NewValidationError("permit is not pending", internal.ErrCodeInvalidPermitStatus)
		}
		return nil, internal.NewInternalError("could not update permit status", err)
	}
	return s.GetByID(id)
}

// Attach adds stations and people to a pending permit. The composite keys on
// the join tables reject duplicate pairings.
func (s *Service) Attach(id int64, dto *AttachDTO) (*PermitView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("permit not found", internal.ErrCodePermitNotFound)
		}
		return nil, internal.NewInternalError("could not load permit", err)
	}
	if p.Status != StatusPending {
		return nil, internal.NewValidationError("permit is not pending", internal.ErrCodeInvalidPermitStatus)
	}

	if len(dto.StationIDs) > 0 {
		stations, err := s.resolveStations(dto.StationIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.AppendStations(p, stations); err != nil {
			return nil, internal.NewInternalError("could not attach stations", err)
		}
	}

	if len(dto.PersonIDs) > 0 {
		people, err := s.resolvePeople(dto.PersonIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.AppendPeople(p, people); err != nil {
			return nil, internal.NewInternalError("could not attach people", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) resolveStations(ids []int64) ([]stationDatamodel.Station, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	stations, err := s.repo.GetStationsByIDs(ids)
	if err != nil {
		return nil, internal.NewInternalError("could not load stations", err)
	}
	if len(stations) != len(uniqueIDs(ids)) {
		return nil, internal.NewNotFoundError("one or more stations not found", internal.ErrCodeStationNotFound)
	}
	return stations, nil
}

func (s *Service) resolvePeople(ids []int64) ([]personnelDatamodel.PersonalInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	people, err := s.repo.GetPeopleByIDs(ids)
	if err != nil {
		return nil, internal.NewInternalError("could not load people", err)
	}
	if len(people) != len(uniqueIDs(ids)) {
		return nil, internal.NewNotFoundError("one or more people not found", internal.ErrCodePersonNotFound)
	}

	var blocked []string
	for _, person := range people {
		if !person.IsAllowed {
			blocked = append(blocked, person.FullName)
		}
	}
	if len(blocked) > 0 {
		msg := fmt.Sprintf("not allowed on permits: %s", strings.Join(blocked, ", "))
		return nil, internal.NewValidationError(msg, internal.ErrCodePersonNotAllowed)
	}

	return people, nil
}

func views(rows []*permitDatamodel.Permit) []*PermitView {
	out := make([]*PermitView, 0, len(rows))
	for _, p := range rows {
		out = append(out, FromDataModel(p))
	}
	return out
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// generateControlNumber derives a unique permit reference. The unique column
// backstops the (unlikely) collision.
func generateControlNumber() string {
	return "PMT-" + strings.ToUpper(uuid.NewString()[:8])
}
