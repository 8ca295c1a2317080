package permit

import (
	"errors"
	"time"
)

// CreatePermitDTO is the payload for requesting a permit. The requester is the
// authenticated user, never part of the payload.
type CreatePermitDTO struct {
	Type       string    `json:"type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	StationIDs []int64   `json:"station_ids,omitempty"`
	PersonIDs  []int64   `json:"person_ids,omitempty"`
}

func (dto CreatePermitDTO) Validate() error {
	if dto.Type == "" {
		return errors.New("type is required")
	}
	if dto.StartDate.IsZero() {
		return errors.New("start_date is required")
	}
	if dto.EndDate.IsZero() {
		return errors.New("end_date is required")
	}
	if !dto.EndDate.After(dto.StartDate) {
		return errors.New("end_date must be after start_date")
	}
	return nil
}

// AttachDTO adds stations or people to an existing pending permit.
type AttachDTO struct {
	StationIDs []int64 `json:"station_ids,omitempty"`
	PersonIDs  []int64 `json:"person_ids,omitempty"`
}

func (dto AttachDTO) Validate() error {
	if len(dto.StationIDs) == 0 && len(dto.PersonIDs) == 0 {
		return errors.New("station_ids or person_ids are required")
	}
	return nil
}
