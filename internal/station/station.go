package station

import (
	stationDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/station"
)

// Views are reduced, transport-safe projections. Nested relationships always
// collapse to a ref type (id plus display fields) so serialization never
// recurses through the station/permit cycle.

type MarketView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RegionView struct {
	ID       int64  `json:"id"`
	Region   string `json:"region"`
	MarketID *int64 `json:"market_id,omitempty"`
}

type ContactView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	StationID int64  `json:"station_id"`
}

type StationView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Coordinates string        `json:"coordinates"`
	Address     string        `json:"address"`
	Region      *RegionView   `json:"region,omitempty"`
	Market      *MarketView   `json:"market,omitempty"`
	Contacts    []ContactView `json:"contacts"`
}

func MarketFromDataModel(m *stationDatamodel.Market) *MarketView {
	return &MarketView{ID: m.ID, Name: m.Name}
}

func RegionFromDataModel(r *stationDatamodel.Region) *RegionView {
	return &RegionView{ID: r.ID, Region: r.Region, MarketID: r.MarketID}
}

func ContactFromDataModel(c *stationDatamodel.ContactStation) ContactView {
	return ContactView{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		StationID: c.StationID,
	}
}

func FromDataModel(s *stationDatamodel.Station) *StationView {
	view := &StationView{
		ID:          s.ID,
		Name:        s.Name,
		Coordinates: s.Coordinates,
		Address:     s.Address,
		Contacts:    make([]ContactView, 0, len(s.Contacts)),
	}
	if s.Region != nil {
		view.Region = RegionFromDataModel(s.Region)
	}
	if s.Market != nil {
		view.Market = MarketFromDataModel(s.Market)
	}
	for _, c := range s.Contacts {
		view.Contacts = append(view.Contacts, ContactFromDataModel(&c))
	}
	return view
}
