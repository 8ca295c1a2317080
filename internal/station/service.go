package station

import (
	"errors"

	"github.com/frahmantamala/permit-management/internal"
	stationDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/station"
	"gorm.io/gorm"
)

type Repository interface {
	CreateMarket(m *stationDatamodel.Market) error
	ListMarkets() ([]*stationDatamodel.Market, error)
	DeleteMarket(id int64) error

	CreateRegion(rg *stationDatamodel.Region) error
	ListRegions() ([]*stationDatamodel.Region, error)
	DeleteRegion(id int64) error

	CreateStation(s *stationDatamodel.Station) error
	GetStationByID(id int64) (*stationDatamodel.Station, error)
	ListStations(nameFilter string) ([]*stationDatamodel.Station, error)
	UpdateStation(id int64, fields map[string]interface{}) error
	DeleteStation(id int64) error

	CreateContact(c *stationDatamodel.ContactStation) error
	DeleteContact(id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateMarket(dto *CreateMarketDTO) (*MarketView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	m := &stationDatamodel.Market{Name: dto.Name}
	if err := s.repo.CreateMarket(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("market name already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create market", err)
	}
	return MarketFromDataModel(m), nil
}

func (s *Service) ListMarkets() ([]*MarketView, error) {
	rows, err := s.repo.ListMarkets()
	if err != nil {
		return nil, internal.NewInternalError("could not list markets", err)
	}
	out := make([]*MarketView, 0, len(rows))
	for _, m := range rows {
		out = append(out, MarketFromDataModel(m))
	}
	return out, nil
}

func (s *Service) DeleteMarket(id int64) error {
	if err := s.repo.DeleteMarket(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("market not found", internal.ErrCodeStationNotFound)
		}
		return internal.NewInternalError("could not delete market", err)
	}
	return nil
}

func (s *Service) CreateRegion(dto *CreateRegionDTO) (*RegionView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	rg := &stationDatamodel.Region{Region: dto.Region, MarketID: dto.MarketID}
	if err := s.repo.CreateRegion(rg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("region already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create region", err)
	}
	return RegionFromDataModel(rg), nil
}

func (s *Service) ListRegions() ([]*RegionView, error) {
	rows, err := s.repo.ListRegions()
	if err != nil {
		return nil, internal.NewInternalError("could not list regions", err)
	}
	out := make([]*RegionView, 0, len(rows))
	for _, rg := range rows {
		out = append(out, RegionFromDataModel(rg))
	}
	return out, nil
}

func (s *Service) DeleteRegion(id int64) error {
	if err := s.repo.DeleteRegion(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("region not found", internal.ErrCodeStationNotFound)
		}
		return internal.NewInternalError("could not delete region", err)
	}
	return nil
}

func (s *Service) CreateStation(dto *CreateStationDTO) (*StationView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	st := &stationDatamodel.Station{
		Name:        dto.Name,
		Coordinates: dto.Coordinates,
		Address:     dto.Address,
		RegionID:    dto.RegionID,
		MarketID:    dto.MarketID,
	}
	if err := s.repo.CreateStation(st); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("station name already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create station", err)
	}

	return s.GetStation(st.ID)
}

func (s *Service) GetStation(id int64) (*StationView, error) {
	st, err := s.repo.GetStationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("station not found", internal.ErrCodeStationNotFound)
		}
		return nil, internal.NewInternalError("could not load station", err)
	}
	return FromDataModel(st), nil
}

func (s *Service) ListStations(nameFilter string) ([]*StationView, error) {
	rows, err := s.repo.ListStations(nameFilter)
	if err != nil {
		return nil, internal.NewInternalError("could not list stations", err)
	}
	out := make([]*StationView, 0, len(rows))
	for _, st := range rows {
		out = append(out, FromDataModel(st))
	}
	return out, nil
}

func (s *Service) UpdateStation(id int64, dto *UpdateStationDTO) (*StationView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Coordinates != nil {
		fields["coordinates"] = *dto.Coordinates
	}
	if dto.Address != nil {
		fields["address"] = *dto.Address
	}
	if dto.RegionID != nil {
		fields["region_id"] = *dto.RegionID
	}
	if dto.MarketID != nil {
		fields["market_id"] = *dto.MarketID
	}
	if len(fields) == 0 {
		return nil, internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)
	}

	if err := s.repo.UpdateStation(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("station not found", internal.ErrCodeStationNotFound)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("station name already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not update station", err)
	}

	return s.GetStation(id)
}

func (s *Service) DeleteStation(id int64) error {
	if err := s.repo.DeleteStation(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("station not found", internal.ErrCodeStationNotFound)
		}
		return internal.NewInternalError("could not delete station", err)
	}
	return nil
}

func (s *Service) AddContact(stationID int64, dto *CreateContactDTO) (*ContactView, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if _, err := s.repo.GetStationByID(stationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.NewNotFoundError("station not found", internal.ErrCodeStationNotFound)
		}
		return nil, internal.NewInternalError("could not load station", err)
	}

	c := &stationDatamodel.ContactStation{
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		StationID: stationID,
	}
	if err := s.repo.CreateContact(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.NewConflictError("contact email already exists", internal.ErrCodeDuplicateName)
		}
		return nil, internal.NewInternalError("could not create contact", err)
	}

	view := ContactFromDataModel(c)
	return &view, nil
}

func (s *Service) DeleteContact(id int64) error {
	if err := s.repo.DeleteContact(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.NewNotFoundError("contact not found", internal.ErrCodeStationNotFound)
		}
		return internal.NewInternalError("could not delete contact", err)
	}
	return nil
}
