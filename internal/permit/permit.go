package permit

import (
	"time"

	permitDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/permit"
)

// Permit status values, string-valued in the store.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// StationRef is the reduced projection of a covered station: id and name only,
// never the station's own relationships.
type StationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PersonRef is the reduced projection of a covered person.
type PersonRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// PermitView is the transport-safe projection of a permit. Related entities
// appear as refs so serialization never recurses through the permit/station
// and permit/person cycles.
type PermitView struct {
	ID            int64        `json:"id"`
	ControlNumber string       `json:"control_number"`
	Type          string       `json:"type"`
	Status        string       `json:"status"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	RequesterID   int64        `json:"requester_id"`
	ApproverID    *int64       `json:"approver_id,omitempty"`
	Stations      []StationRef `json:"stations"`
	People        []PersonRef  `json:"people"`
}

func FromDataModel(p *permitDatamodel.Permit) *PermitView {
	view := &PermitView{
		ID:            p.ID,
		ControlNumber: p.ControlNumber,
		Type:          p.Type,
		Status:        p.Status,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		RequesterID:   p.RequesterID,
		ApproverID:    p.ApproverID,
		Stations:      make([]StationRef, 0, len(p.Stations)),
		People:        make([]PersonRef, 0, len(p.People)),
	}
	for _, st := range p.Stations {
		view.Stations = append(view.Stations, StationRef{ID: st.ID, Name: st.Name})
	}
	for _, person := range p.People {
		view.People = append(view.People, PersonRef{ID: person.ID, FullName: person.FullName})
	}
	return view
}
