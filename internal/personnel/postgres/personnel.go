package postgres

import (
	personnelDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
	"github.com/frahmantamala/permit-management/internal/personnel"
	"gorm.io/gorm"
)

// PersonnelRepository implements personnel.Repository using GORM.
type PersonnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) personnel.Repository {
	return &PersonnelRepository{db: db}
}

func (r *PersonnelRepository) CreatePerson(p *personnelDatamodel.PersonalInfo) error {
	return r.db.Create(p).Error
}

func (r *PersonnelRepository) GetPersonByID(id int64) (*personnelDatamodel.PersonalInfo, error) {
	var p personnelDatamodel.PersonalInfo
	if err := r.db.Preload("Contractor").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonnelRepository) ListPeople(limit, offset int) ([]*personnelDatamodel.PersonalInfo, error) {
	var people []*personnelDatamodel.PersonalInfo
	err := r.db.Preload("Contractor").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&people).Error
	return people, err
}

func (r *PersonnelRepository) UpdatePerson(id int64, fields map[string]interface{}) error {
	res := r.db.Model(&personnelDatamodel.PersonalInfo{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PersonnelRepository) DeletePerson(id int64) error {
	res := r.db.Delete(&personnelDatamodel.PersonalInfo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PersonnelRepository) CreateContractor(c *personnelDatamodel.Contractor) error {
	return r.db.Create(c).Error
}

func (r *PersonnelRepository) GetContractorByID(id int64) (*personnelDatamodel.Contractor, error) {
	var c personnelDatamodel.Contractor
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PersonnelRepository) ListContractors() ([]*personnelDatamodel.Contractor, error) {
	var contractors []*personnelDatamodel.Contractor
	err := r.db.Order("id ASC").Find(&contractors).Error
	return contractors, err
}

func (r *PersonnelRepository) DeleteContractor(id int64) error {
	res := r.db.Delete(&personnelDatamodel.Contractor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
