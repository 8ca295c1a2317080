package personnel

import (
	personnelDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
)

// PersonView is the transport-safe projection of a personal record.
type PersonView struct {
	ID         int64          `json:"id"`
	FullName   string         `json:"full_name"`
	NationalID string         `json:"national_id"`
	IsAllowed  bool           `json:"is_allowed"`
	Contractor *ContractorRef `json:"contractor,omitempty"`
}

// ContractorRef is the reduced projection used when a person nests its contractor.
type ContractorRef struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
}

type ContractorView struct {
	ID           int64  `json:"id"`
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

func FromDataModel(p *personnelDatamodel.PersonalInfo) *PersonView {
	view := &PersonView{
		ID:         p.ID,
		FullName:   p.FullName,
		NationalID: p.NationalID,
		IsAllowed:  p.IsAllowed,
	}
	if p.Contractor != nil {
		view.Contractor = &ContractorRef{
			ID:          p.Contractor.ID,
			CompanyName: p.Contractor.CompanyName,
		}
	}
	return view
}

func ContractorFromDataModel(c *personnelDatamodel.Contractor) *ContractorView {
	return &ContractorView{
		ID:           c.ID,
		CompanyName:  c.CompanyName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
	}
}
