package personnel

import "errors"

type CreatePersonDTO struct {
	FullName     string `json:"full_name"`
	NationalID   string `json:"national_id"`
	IsAllowed    bool   `json:"is_allowed"`
	ContractorID *int64 `json:"contractor_id,omitempty"`
}

func (dto CreatePersonDTO) Validate() error {
	if dto.FullName == "" {
		return errors.New("full_name is required")
	}
	if dto.NationalID == "" {
		return errors.New("national_id is required")
	}
	return nil
}

// UpdatePersonDTO carries partial updates; nil fields are left unchanged.
// ClearContractor removes the contractor link, since an absent contractor_id
// cannot be told apart from one that was never sent.
type UpdatePersonDTO struct {
	FullName        *string `json:"full_name,omitempty"`
	ContractorID    *int64  `json:"contractor_id,omitempty"`
	ClearContractor bool    `json:"clear_contractor,omitempty"`
}

func (dto UpdatePersonDTO) Validate() error {
	if dto.FullName != nil && *dto.FullName == "" {
		return errors.New("full_name cannot be empty")
	}
	if dto.ClearContractor && dto.ContractorID != nil {
		return errors.New("contractor_id and clear_contractor are mutually exclusive")
	}
	return nil
}

type CreateContractorDTO struct {
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

func (dto CreateContractorDTO) Validate() error {
	if dto.CompanyName == "" {
		return errors.New("company_name is required")
	}
	if dto.ContactEmail == "" {
		return errors.New("contact_email is required")
	}
	return nil
}

type SetAllowedDTO struct {
	IsAllowed bool `json:"is_allowed"`
}
