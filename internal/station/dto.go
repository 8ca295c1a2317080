package station

import "errors"

type CreateMarketDTO struct {
	Name string `json:"name"`
}

func (dto CreateMarketDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type CreateRegionDTO struct {
	Region   string `json:"region"`
	MarketID *int64 `json:"market_id,omitempty"`
}

func (dto CreateRegionDTO) Validate() error {
	if dto.Region == "" {
		return errors.New("region is required")
	}
	return nil
}

type CreateStationDTO struct {
	Name        string `json:"name"`
	Coordinates string `json:"coordinates"`
	Address     string `json:"address"`
	RegionID    *int64 `json:"region_id,omitempty"`
	MarketID    *int64 `json:"market_id,omitempty"`
}

func (dto CreateStationDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Coordinates == "" {
		return errors.New("coordinates are required")
	}
	if dto.Address == "" {
		return errors.New("address is required")
	}
	return nil
}

// UpdateStationDTO carries partial updates; nil fields are left unchanged.
type UpdateStationDTO struct {
	Name        *string `json:"name,omitempty"`
	Coordinates *string `json:"coordinates,omitempty"`
	Address     *string `json:"address,omitempty"`
	RegionID    *int64  `json:"region_id,omitempty"`
	MarketID    *int64  `json:"market_id,omitempty"`
}

func (dto UpdateStationDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.New("name cannot be empty")
	}
	if dto.Coordinates != nil && *dto.Coordinates == "" {
		return errors.New("coordinates cannot be empty")
	}
	if dto.Address != nil && *dto.Address == "" {
		return errors.New("address cannot be empty")
	}
	return nil
}

type CreateContactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func (dto CreateContactDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
