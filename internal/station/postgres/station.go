package postgres

import (
	stationDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/station"
	"github.com/frahmantamala/permit-management/internal/station"
	"gorm.io/gorm"
)

// StationRepository implements station.Repository using GORM.
type StationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) station.Repository {
	return &StationRepository{db: db}
}

func (r *StationRepository) CreateMarket(m *stationDatamodel.Market) error {
	return r.db.Create(m).Error
}

func (r *StationRepository) ListMarkets() ([]*stationDatamodel.Market, error) {
	var markets []*stationDatamodel.Market
	err := r.db.Order("id ASC").Find(&markets).Error
	return markets, err
}

func (r *StationRepository) DeleteMarket(id int64) error {
	return deleteByID(r.db, &stationDatamodel.Market{}, id)
}

func (r *StationRepository) CreateRegion(rg *stationDatamodel.Region) error {
	return r.db.Create(rg).Error
}

func (r *StationRepository) ListRegions() ([]*stationDatamodel.Region, error) {
	var regions []*stationDatamodel.Region
	err := r.db.Order("id ASC").Find(&regions).Error
	return regions, err
}

func (r *StationRepository) DeleteRegion(id int64) error {
	return deleteByID(r.db, &stationDatamodel.Region{}, id)
}

func (r *StationRepository) CreateStation(s *stationDatamodel.Station) error {
	return r.db.Create(s).Error
}

func (r *StationRepository) GetStationByID(id int64) (*stationDatamodel.Station, error) {
	var s stationDatamodel.Station
	err := r.db.Preload("Region").
		Preload("Market").
		Preload("Contacts").
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StationRepository) ListStations(nameFilter string) ([]*stationDatamodel.Station, error) {
	var stations []*stationDatamodel.Station
	q := r.db.Preload("Region").Preload("Market").Preload("Contacts").Order("id ASC")
	if nameFilter != "" {
		q = q.Where("name LIKE ?", "%"+nameFilter+"%")
	}
	err := q.Find(&stations).Error
	return stations, err
}

func (r *StationRepository) UpdateStation(id int64, fields map[string]interface{}) error {
	res := r.db.Model(&stationDatamodel.Station{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StationRepository) DeleteStation(id int64) error {
	return deleteByID(r.db, &stationDatamodel.Station{}, id)
}

func (r *StationRepository) CreateContact(c *stationDatamodel.ContactStation) error {
	return r.db.Create(c).Error
}

func (r *StationRepository) DeleteContact(id int64) error {
	return deleteByID(r.db, &stationDatamodel.ContactStation{}, id)
}

func deleteByID(db *gorm.DB, model interface{}, id int64) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
