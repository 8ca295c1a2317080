package postgres

import (
	permitDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/permit"
	personnelDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
	stationDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/station"
	"github.com/frahmantamala/permit-management/internal/permit"
	"gorm.io/gorm"
)

// PermitRepository implements permit.Repository using GORM. Associations are
// written through the permit side; reverse lookups join through the two
// composite-key association tables.
type PermitRepository struct {
	db *gorm.DB
}

func NewPermitRepository(db *gorm.DB) permit.Repository {
	return &PermitRepository{db: db}
}

func (r *PermitRepository) Create(p *permitDatamodel.Permit) error {
	// Omit upserting the associated rows themselves; only join rows are written.
	return r.db.Omit("Stations.*", "People.*").Create(p).Error
}

func (r *PermitRepository) GetByID(id int64) (*permitDatamodel.Permit, error) {
	var p permitDatamodel.Permit
	err := r.db.Preload("Stations").
		Preload("People").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PermitRepository) List(status string, limit, offset int) ([]*permitDatamodel.Permit, error) {
	var permits []*permitDatamodel.Permit
	q := r.db.Preload("Stations").Preload("People").Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Limit(limit).Offset(offset).Find(&permits).Error
	return permits, err
}

func (r *PermitRepository) ListByStation(stationID int64) ([]*permitDatamodel.Permit, error) {
	var permits []*permitDatamodel.Permit
	err := r.db.Preload("Stations").
		Preload("People").
		Joins("JOIN permit_stations ps ON ps.permit_id = permits.id").
		Where("ps.station_id = ?", stationID).
		Order("permits.id ASC").
		Find(&permits).Error
	return permits, err
}

func (r *PermitRepository) ListByPerson(personID int64) ([]*permitDatamodel.Permit, error) {
	var permits []*permitDatamodel.Permit
	err := r.db.Preload("Stations").
		Preload("People").
		Joins("JOIN permit_people pp ON pp.permit_id = permits.id").
		Where("pp.personal_info_id = ?", personID).
		Order("permits.id ASC").
		Find(&permits).Error
	return permits, err
}

// UpdateStatus transitions a permit and records the approver in one guarded
// update. Zero affected rows means the permit is missing or not in fromStatus.
func (r *PermitRepository) UpdateStatus(id int64, fromStatus, toStatus string, approverID int64) error {
	res := r.db.Model(&permitDatamodel.Permit{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":      toStatus,
			"approver_id": approverID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PermitRepository) AppendStations(p *permitDatamodel.Permit, stations []stationDatamodel.Station) error {
	return r.db.Model(p).Omit("Stations.*").Association("Stations").Append(stations)
}

func (r *PermitRepository) AppendPeople(p *permitDatamodel.Permit, people []personnelDatamodel.PersonalInfo) error {
	return r.db.Model(p).Omit("People.*").Association("People").Append(people)
}

func (r *PermitRepository) GetStationsByIDs(ids []int64) ([]stationDatamodel.Station, error) {
	var stations []stationDatamodel.Station
	err := r.db.Where("id IN ?", ids).Find(&stations).Error
	return stations, err
}

func (r *PermitRepository) GetPeopleByIDs(ids []int64) ([]personnelDatamodel.PersonalInfo, error) {
	var people []personnelDatamodel.PersonalInfo
	err := r.db.Where("id IN ?", ids).Find(&people).Error
	return people, err
}
